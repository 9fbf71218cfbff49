package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/ctxlog"
)

// DefaultNeo4jQuery returns one row per location with its outgoing roads in
// slot order. Central locations carry centralNode = "O".
const DefaultNeo4jQuery = `
MATCH (n:Location)
OPTIONAL MATCH (n)-[r:ROAD]->(m:Location)
WITH n, r, m ORDER BY r.slot
WITH n, collect(CASE WHEN m IS NULL THEN NULL ELSE {to: m.code, weight: r.weight} END) AS links
RETURN n.code AS code, n.centralNode AS centralNode, links
ORDER BY code`

// ErrMissingURI indicates the Neo4j URI is not provided.
var ErrMissingURI = errors.New("source: neo4j URI is required")

// Neo4jOptions configures the Bolt connection.
type Neo4jOptions struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// Client is the minimal contract the Neo4j source needs from a graph database.
type Client interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified representation of a query response.
type Result struct {
	Records []Record
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Neo4j loads locations and roads through a Client.
type Neo4j struct {
	Client Client
	Query  string // empty: DefaultNeo4jQuery
}

// Load runs the query and converts each record into a core.Node.
func (s *Neo4j) Load(ctx context.Context) (*core.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	query := s.Query
	if query == "" {
		query = DefaultNeo4jQuery
	}

	res, err := s.Client.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("source: neo4j read: %w", err)
	}
	logger.Debug("Neo4j graph query finished.", "records", len(res.Records))

	nodes := make([]core.Node, 0, len(res.Records))
	for i, rec := range res.Records {
		n, err := recordNode(rec)
		if err != nil {
			return nil, fmt.Errorf("source: neo4j record %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}

	return core.NewGraph(nodes)
}

// Close releases the underlying client.
func (s *Neo4j) Close(ctx context.Context) error {
	return s.Client.Close(ctx)
}

func recordNode(rec Record) (core.Node, error) {
	code, ok := rec["code"].(string)
	if !ok {
		return core.Node{}, fmt.Errorf("code is %T, want string", rec["code"])
	}

	n := core.Node{Code: code}
	if marker, ok := rec["centralNode"].(string); ok {
		n.Central = core.IsCentralMarker(marker)
	}

	links, _ := rec["links"].([]any)
	if len(links) > core.NeighborSlots {
		return core.Node{}, fmt.Errorf("%w %q: %d > %d", ErrTooManyLinks, code, len(links), core.NeighborSlots)
	}
	for i, raw := range links {
		m, ok := raw.(map[string]any)
		if !ok {
			return core.Node{}, fmt.Errorf("node %q link %d is %T, want map", code, i, raw)
		}
		to, _ := m["to"].(string)
		w, err := toFloat(m["weight"])
		if err != nil {
			return core.Node{}, fmt.Errorf("node %q link %d: %w", code, i, err)
		}
		n.Neighbors[i] = core.To(to, w)
	}

	return n, nil
}

// toFloat accepts the numeric types Bolt decodes into. A missing weight is 0.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("weight is %T, want number", v)
	}
}

// NewNeo4jClient establishes a Bolt connection using the official Neo4j driver.
func NewNeo4jClient(ctx context.Context, opts Neo4jOptions) (Client, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("source: create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("source: verify neo4j connectivity: %w", err)
	}

	return &neo4jClient{
		driver:   driver,
		database: opts.Database,
	}, nil
}

type neo4jClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func (c *neo4jClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return Result{}, err
	}

	return consumeResult(ctx, res)
}

func (c *neo4jClient) VerifyConnectivity(ctx context.Context) error {
	return c.driver.VerifyConnectivity(ctx)
}

func (c *neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func consumeResult(ctx context.Context, res neo4j.ResultWithContext) (Result, error) {
	var records []Record
	for res.Next(ctx) {
		rec := res.Record()
		record := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			record[key] = value
		}
		records = append(records, record)
	}
	if err := res.Err(); err != nil {
		return Result{}, err
	}

	return Result{Records: records}, nil
}
