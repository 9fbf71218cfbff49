// Package cli implements the roadmap command line: flag parsing, graph
// loading, the path search and JSON output.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadmap/config"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *ExitError) Unwrap() error { return e.Err }

// Request is a fully resolved invocation.
type Request struct {
	Config       config.Config
	Start        string
	Finish       string
	ShowDistance bool
}

// Parse processes command-line arguments on top of base (usually loaded
// from the environment). It returns the resolved Request, a boolean telling
// the caller to exit cleanly (help was printed), or an *ExitError with code 2.
func Parse(args []string, base config.Config, output io.Writer) (*Request, bool, error) {
	flagSet := flag.NewFlagSet("roadmap", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
roadmap - shortest route between two locations of a road graph.

Usage:
  roadmap [options] START FINISH

Prints the route as a JSON array of node codes. When FINISH cannot be
reached the array holds FINISH alone.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", base.Graph.Path, "Path to the graph file (.json or .hcl).")
	formatFlag := flagSet.String("format", base.Graph.Format, "Graph format: 'json', 'hcl' or 'neo4j'. Empty infers from -graph.")
	logLevelFlag := flagSet.String("log-level", base.Logging.Level, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", base.Logging.Format, "Log output format: 'text' or 'json'.")
	ignoreCentralFlag := flagSet.Bool("ignore-central", base.Search.IgnoreCentral, "Allow central nodes as ordinary waypoints.")
	distanceFlag := flagSet.Bool("distance", false, "Print {path, distance, reached} instead of a bare array.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	if flagSet.NArg() != 2 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "expected exactly two arguments: START FINISH"}
	}

	cfg := base
	cfg.Graph.Path = *graphFlag
	cfg.Graph.Format = strings.ToLower(*formatFlag)
	cfg.Logging.Level = strings.ToLower(*logLevelFlag)
	cfg.Logging.Format = strings.ToLower(*logFormatFlag)
	cfg.Search.IgnoreCentral = *ignoreCentralFlag
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	req := &Request{
		Config:       cfg,
		Start:        flagSet.Arg(0),
		Finish:       flagSet.Arg(1),
		ShowDistance: *distanceFlag,
	}
	if req.Start == "" || req.Finish == "" {
		return nil, false, &ExitError{Code: 2, Message: "START and FINISH must be non-empty"}
	}

	return req, false, nil
}
