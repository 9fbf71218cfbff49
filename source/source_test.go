package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/dijkstra"
	"github.com/katalvlaran/roadmap/source"
)

const nodeJSON = `[
  {"code": "A", "nearNode0": "B", "weight0": 1, "nearNode1": "C", "weight1": 5,
   "nearNode2": null, "centralNode": "X", "name": "Gate"},
  {"code": "B", "nearNode0": "C", "weight0": 1, "centralNode": null},
  {"code": "M", "nearNode3": "C", "weight3": 0.5, "centralNode": "O"},
  {"code": "C", "nearNode7": "", "weight7": 4}
]`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// ------------------------------------------------------------------------
// JSON
// ------------------------------------------------------------------------

func TestDecodeJSON_Records(t *testing.T) {
	g, err := source.DecodeJSON(strings.NewReader(nodeJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "M", "C"}, g.Codes())

	a, _ := g.Node("A")
	assert.False(t, a.Central)
	assert.Equal(t, []core.Link{core.To("B", 1), core.To("C", 5)}, a.Links())

	m, _ := g.Node("M")
	assert.True(t, m.Central)
	assert.Equal(t, core.To("C", 0.5), m.Neighbors[3])
	assert.False(t, m.Neighbors[0].IsSet())

	c, _ := g.Node("C")
	assert.Empty(t, c.Links(), "empty nearNode string leaves the slot unset")
}

func TestDecodeJSON_Errors(t *testing.T) {
	_, err := source.DecodeJSON(strings.NewReader(`{"code": "A"}`))
	require.Error(t, err)

	_, err = source.DecodeJSON(strings.NewReader(`[{"code": "A"}, {"code": "A"}]`))
	require.ErrorIs(t, err, core.ErrDuplicateCode)

	_, err = source.DecodeJSON(strings.NewReader(`[{"code": "A", "nearNode0": "B", "weight0": -2}]`))
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestJSONFile_LoadAndSearch(t *testing.T) {
	path := writeFile(t, "node.json", nodeJSON)

	g, err := source.JSONFile{Path: path}.Load(context.Background())
	require.NoError(t, err)

	got, err := dijkstra.FindShortestPath(g, "A", "C")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A", "B", "C"}, got); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFile_MissingFile(t *testing.T) {
	_, err := source.JSONFile{Path: filepath.Join(t.TempDir(), "nope.json")}.Load(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

// ------------------------------------------------------------------------
// HCL
// ------------------------------------------------------------------------

const nodeHCL = `
node "A" {
  link "B" { weight = 1 }
  link "C" { weight = 2.5 * 2 }
}

node "B" {
  link "C" { weight = 1 }
}

node "M" {
  central = true
  link "C" { weight = "0.5" }
}

node "C" {}
`

func TestDecodeHCL_Nodes(t *testing.T) {
	g, err := source.DecodeHCL([]byte(nodeHCL), "graph.hcl")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "M", "C"}, g.Codes())

	a, _ := g.Node("A")
	assert.Equal(t, []core.Link{core.To("B", 1), core.To("C", 5)}, a.Links())

	m, _ := g.Node("M")
	assert.True(t, m.Central)
	assert.Equal(t, core.To("C", 0.5), m.Neighbors[0])
}

// linkHCL wraps one link body in a node block.
func linkHCL(body string) string {
	return "node \"A\" {\n  link \"B\" {\n    " + body + "\n  }\n}\n"
}

func TestDecodeHCL_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		is   error
		msg  string
	}{
		{name: "syntax", src: `node "A" {`, msg: "failed to parse"},
		{name: "missing weight", src: linkHCL(""), msg: "failed to decode"},
		{name: "not a number", src: linkHCL(`weight = "far"`), msg: "must be a number"},
		{name: "null weight", src: linkHCL("weight = null"), msg: "null"},
		{name: "variable", src: linkHCL("weight = w"), msg: "link"},
		{
			name: "too many links",
			src:  "node \"A\" {\n" + strings.Repeat("link \"B\" { weight = 1 }\n", core.NeighborSlots+1) + "}\n",
			is:   source.ErrTooManyLinks,
		},
		{name: "duplicate", src: "node \"A\" {}\nnode \"A\" {}", is: core.ErrDuplicateCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := source.DecodeHCL([]byte(tc.src), "bad.hcl")
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestHCLFile_Load(t *testing.T) {
	path := writeFile(t, "graph.hcl", nodeHCL)

	g, err := source.HCLFile{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

// ------------------------------------------------------------------------
// Open
// ------------------------------------------------------------------------

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	s, err := source.Open(ctx, source.Options{Path: "roads/node.json"})
	require.NoError(t, err)
	assert.IsType(t, source.JSONFile{}, s)

	s, err = source.Open(ctx, source.Options{Path: "roads/graph.HCL"})
	require.NoError(t, err)
	assert.IsType(t, source.HCLFile{}, s)

	s, err = source.Open(ctx, source.Options{Format: source.FormatJSON, Path: "graph.txt"})
	require.NoError(t, err)
	assert.Equal(t, source.JSONFile{Path: "graph.txt"}, s)

	_, err = source.Open(ctx, source.Options{Path: "graph.yaml"})
	require.ErrorIs(t, err, source.ErrUnknownFormat)

	_, err = source.Open(ctx, source.Options{Format: source.FormatHCL})
	require.ErrorIs(t, err, source.ErrMissingPath)

	_, err = source.Open(ctx, source.Options{Format: source.FormatNeo4j})
	require.ErrorIs(t, err, source.ErrMissingURI)
}

// ------------------------------------------------------------------------
// Neo4j
// ------------------------------------------------------------------------

// fakeClient returns canned results and records the executed query.
type fakeClient struct {
	result source.Result
	err    error
	query  string
	closed bool
}

func (f *fakeClient) ExecuteRead(_ context.Context, cypher string, _ map[string]any) (source.Result, error) {
	f.query = cypher
	return f.result, f.err
}

func (f *fakeClient) VerifyConnectivity(context.Context) error { return nil }

func (f *fakeClient) Close(context.Context) error {
	f.closed = true
	return nil
}

func TestNeo4j_Load(t *testing.T) {
	client := &fakeClient{result: source.Result{Records: []source.Record{
		{"code": "A", "centralNode": nil, "links": []any{
			map[string]any{"to": "M", "weight": int64(1)},
			map[string]any{"to": "C", "weight": 9.0},
		}},
		{"code": "M", "centralNode": "O", "links": []any{
			map[string]any{"to": "C", "weight": 1.5},
		}},
		{"code": "C", "centralNode": "X", "links": []any{}},
	}}}
	s := &source.Neo4j{Client: client}

	g, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, source.DefaultNeo4jQuery, client.query)

	m, _ := g.Node("M")
	assert.True(t, m.Central)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "M", "C"}, res.Path)
	assert.Equal(t, 2.5, res.Distance)

	require.NoError(t, s.Close(context.Background()))
	assert.True(t, client.closed)
}

func TestNeo4j_LoadErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := (&source.Neo4j{Client: &fakeClient{err: boom}}).Load(context.Background())
	require.ErrorIs(t, err, boom)

	bad := &fakeClient{result: source.Result{Records: []source.Record{{"code": 7}}}}
	_, err = (&source.Neo4j{Client: bad}).Load(context.Background())
	require.Error(t, err)

	badWeight := &fakeClient{result: source.Result{Records: []source.Record{
		{"code": "A", "links": []any{map[string]any{"to": "B", "weight": "heavy"}}},
	}}}
	_, err = (&source.Neo4j{Client: badWeight, Query: "MATCH (n) RETURN n"}).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "MATCH (n) RETURN n", badWeight.query)
}
