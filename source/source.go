// Package source loads core.Graph snapshots from storage.
//
// Three backends are provided:
//
//   - JSONFile: the node.json record format (code, nearNode0..7, weight0..7,
//     centralNode).
//   - HCLFile:  an HCL document of node blocks with nested link blocks.
//   - Neo4j:    (:Location)-[:ROAD]->(:Location) records read over Bolt.
//
// Every backend returns errors wrapped with the offending path or query so the
// CLI can report them verbatim. Structural validation (empty/duplicate codes,
// negative weights) is delegated to core.NewGraph.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/roadmap/core"
)

// Source produces a graph snapshot.
type Source interface {
	Load(ctx context.Context) (*core.Graph, error)
}

// Format names a storage backend.
type Format string

const (
	FormatJSON  Format = "json"
	FormatHCL   Format = "hcl"
	FormatNeo4j Format = "neo4j"
)

var (
	// ErrUnknownFormat indicates a format name or file extension no backend handles.
	ErrUnknownFormat = errors.New("source: unknown graph format")

	// ErrTooManyLinks indicates a stored node declares more than core.NeighborSlots links.
	ErrTooManyLinks = errors.New("source: too many links for node")

	// ErrMissingPath indicates a file backend was selected without a path.
	ErrMissingPath = errors.New("source: graph path is required")
)

// Options selects and configures a backend for Open.
type Options struct {
	Format Format // empty: inferred from Path's extension
	Path   string // file backends

	Neo4j Neo4jOptions // FormatNeo4j
}

// Open returns the Source described by opts. Neo4j sources connect eagerly so
// connectivity problems surface here rather than on first Load.
func Open(ctx context.Context, opts Options) (Source, error) {
	format := opts.Format
	if format == "" {
		format = inferFormat(opts.Path)
	}

	switch format {
	case FormatJSON:
		if opts.Path == "" {
			return nil, ErrMissingPath
		}
		return JSONFile{Path: opts.Path}, nil
	case FormatHCL:
		if opts.Path == "" {
			return nil, ErrMissingPath
		}
		return HCLFile{Path: opts.Path}, nil
	case FormatNeo4j:
		client, err := NewNeo4jClient(ctx, opts.Neo4j)
		if err != nil {
			return nil, err
		}
		return &Neo4j{Client: client}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func inferFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".json", "":
		return FormatJSON
	default:
		return Format(strings.TrimPrefix(filepath.Ext(path), "."))
	}
}
