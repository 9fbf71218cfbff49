package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/ctxlog"
)

// JSONFile reads a node.json document from disk.
type JSONFile struct {
	Path string
}

// Load opens Path and decodes it with DecodeJSON.
func (f JSONFile) Load(ctx context.Context) (*core.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading JSON graph.", "path", f.Path)

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", f.Path, err)
	}
	defer file.Close()

	g, err := DecodeJSON(file)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", f.Path, err)
	}
	logger.Debug("JSON graph loaded.", "path", f.Path, "nodes", g.Len())

	return g, nil
}

// nodeRecord mirrors one element of node.json. The slot fields are spelled
// out so decoding needs no name-based lookup.
type nodeRecord struct {
	Code        string  `json:"code"`
	CentralNode *string `json:"centralNode"`

	NearNode0 *string `json:"nearNode0"`
	NearNode1 *string `json:"nearNode1"`
	NearNode2 *string `json:"nearNode2"`
	NearNode3 *string `json:"nearNode3"`
	NearNode4 *string `json:"nearNode4"`
	NearNode5 *string `json:"nearNode5"`
	NearNode6 *string `json:"nearNode6"`
	NearNode7 *string `json:"nearNode7"`

	Weight0 float64 `json:"weight0"`
	Weight1 float64 `json:"weight1"`
	Weight2 float64 `json:"weight2"`
	Weight3 float64 `json:"weight3"`
	Weight4 float64 `json:"weight4"`
	Weight5 float64 `json:"weight5"`
	Weight6 float64 `json:"weight6"`
	Weight7 float64 `json:"weight7"`
}

// node converts the record. A null or empty nearNodeN leaves slot N unset.
func (r nodeRecord) node() core.Node {
	near := [core.NeighborSlots]*string{
		r.NearNode0, r.NearNode1, r.NearNode2, r.NearNode3,
		r.NearNode4, r.NearNode5, r.NearNode6, r.NearNode7,
	}
	weight := [core.NeighborSlots]float64{
		r.Weight0, r.Weight1, r.Weight2, r.Weight3,
		r.Weight4, r.Weight5, r.Weight6, r.Weight7,
	}

	n := core.Node{Code: r.Code}
	if r.CentralNode != nil {
		n.Central = core.IsCentralMarker(*r.CentralNode)
	}
	for i := range near {
		if near[i] == nil || *near[i] == "" {
			continue
		}
		n.Neighbors[i] = core.To(*near[i], weight[i])
	}

	return n
}

// DecodeJSON parses a node.json array into a graph snapshot, keeping the
// records' order. Unknown fields are ignored.
func DecodeJSON(r io.Reader) (*core.Graph, error) {
	var records []nodeRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode node records: %w", err)
	}

	nodes := make([]core.Node, len(records))
	for i, rec := range records {
		nodes[i] = rec.node()
	}

	return core.NewGraph(nodes)
}
