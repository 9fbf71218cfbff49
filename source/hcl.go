package source

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/ctxlog"
)

// HCLFile reads a graph written as HCL node blocks:
//
//	node "A" {
//	  link "B" { weight = 1 }
//	  link "C" { weight = 2.5 * 2 }
//	}
//	node "M" {
//	  central = true
//	  link "C" { weight = 1 }
//	}
//
// Link blocks fill slots 0..7 in the order they appear. Weights are arbitrary
// constant expressions that evaluate to a number.
type HCLFile struct {
	Path string
}

// hclRoot is used to decode the top level of a graph file.
type hclRoot struct {
	Nodes []*hclNode `hcl:"node,block"`
}

type hclNode struct {
	Code    string     `hcl:"code,label"`
	Central bool       `hcl:"central,optional"`
	Links   []*hclLink `hcl:"link,block"`
}

type hclLink struct {
	To     string         `hcl:"to,label"`
	Weight hcl.Expression `hcl:"weight,attr"`
}

// Load reads Path and decodes it with DecodeHCL.
func (f HCLFile) Load(ctx context.Context) (*core.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL graph.", "path", f.Path)

	src, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", f.Path, err)
	}

	g, err := DecodeHCL(src, f.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL graph loaded.", "path", f.Path, "nodes", g.Len())

	return g, nil
}

// DecodeHCL parses src (reported as filename in diagnostics) into a graph.
func DecodeHCL(src []byte, filename string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("source: failed to parse HCL file %s: %w", filename, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("source: failed to decode HCL file %s: %w", filename, diags)
	}

	nodes := make([]core.Node, 0, len(root.Nodes))
	for _, hn := range root.Nodes {
		n, err := hn.node()
		if err != nil {
			return nil, fmt.Errorf("source: %s: %w", filename, err)
		}
		nodes = append(nodes, n)
	}

	return core.NewGraph(nodes)
}

func (hn *hclNode) node() (core.Node, error) {
	if len(hn.Links) > core.NeighborSlots {
		return core.Node{}, fmt.Errorf("%w %q: %d > %d", ErrTooManyLinks, hn.Code, len(hn.Links), core.NeighborSlots)
	}

	n := core.Node{Code: hn.Code, Central: hn.Central}
	for i, hl := range hn.Links {
		w, err := evalWeight(hl.Weight)
		if err != nil {
			return core.Node{}, fmt.Errorf("node %q link %q: %w", hn.Code, hl.To, err)
		}
		n.Neighbors[i] = core.To(hl.To, w)
	}

	return n, nil
}

// evalWeight evaluates a constant weight expression to a float64.
func evalWeight(expr hcl.Expression) (float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, fmt.Errorf("weight must not be null")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("weight must be a number: %w", err)
	}

	var w float64
	if err := gocty.FromCtyValue(num, &w); err != nil {
		return 0, fmt.Errorf("weight: %w", err)
	}

	return w, nil
}
