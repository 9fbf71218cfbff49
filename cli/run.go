package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/roadmap/ctxlog"
	"github.com/katalvlaran/roadmap/dijkstra"
	"github.com/katalvlaran/roadmap/source"
)

// routeOutput is the -distance output shape. Distance is null when unreached.
type routeOutput struct {
	Path     []string `json:"path"`
	Distance *float64 `json:"distance"`
	Reached  bool     `json:"reached"`
}

// Run loads the graph described by req, runs the search and writes JSON to out.
// Failures are returned as *ExitError with code 1.
func Run(ctx context.Context, req *Request, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	src, err := source.Open(ctx, source.Options{
		Format: source.Format(req.Config.Graph.Format),
		Path:   req.Config.Graph.Path,
		Neo4j: source.Neo4jOptions{
			URI:            req.Config.Graph.Neo4jURI,
			Database:       req.Config.Graph.Neo4jDatabase,
			Username:       req.Config.Graph.Neo4jUsername,
			Password:       req.Config.Graph.Neo4jPassword,
			MaxConnections: req.Config.Graph.Neo4jMaxConnections,
		},
	})
	if err != nil {
		return fail("open graph source", err)
	}
	if closer, ok := src.(interface{ Close(context.Context) error }); ok {
		defer func() {
			if err := closer.Close(ctx); err != nil {
				logger.Warn("Closing graph source failed.", "error", err)
			}
		}()
	}

	g, err := src.Load(ctx)
	if err != nil {
		return fail("load graph", err)
	}
	logger.Debug("Graph loaded.", "nodes", g.Len())

	res, err := dijkstra.ShortestPath(g, req.Start, req.Finish,
		dijkstra.WithCentralRule(!req.Config.Search.IgnoreCentral),
		dijkstra.WithLogger(logger),
	)
	if err != nil {
		return fail("search", err)
	}
	if !res.Reached {
		logger.Info("Finish not reachable from start.", "start", req.Start, "finish", req.Finish)
	}

	var payload any = res.Path
	if req.ShowDistance {
		o := routeOutput{Path: res.Path, Reached: res.Reached}
		if res.Reached {
			d := res.Distance
			o.Distance = &d
		}
		payload = o
	}

	if err := json.NewEncoder(out).Encode(payload); err != nil {
		return fail("write result", err)
	}

	return nil
}

func fail(stage string, err error) error {
	return &ExitError{Code: 1, Message: fmt.Sprintf("%s: %v", stage, err), Err: err}
}
