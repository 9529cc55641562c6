package process

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/connector"
)

// Pipeline is the composition root a caller needs to actually run a
// multi-stage AHU sequence (heating -> cooling -> mixing -> humidification)
// once its blocks are wired via connector.Graph, grounded on gofem's
// fem.Run() stage/domain iteration loop generalised from a time-stepped FEM
// domain to a static DAG of psychrometric blocks.
type Pipeline struct {
	blocks map[string]Block
	graph  *connector.Graph
}

// NewPipeline constructs an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{blocks: make(map[string]Block), graph: connector.NewGraph()}
}

// Add appends a block to the pipeline under the given id, recording its
// dependency on upstreamID in the wiring graph (upstreamID may be empty for
// the first block in the sequence).
func (p *Pipeline) Add(id string, block Block, upstreamID string) error {
	p.graph.AddNode(id)
	if upstreamID != "" {
		if err := p.graph.Connect(upstreamID, id); err != nil {
			return err
		}
	}
	p.blocks[id] = block
	return nil
}

// RunAll resolves the wiring graph's topological order and runs every block
// in that order, so a block never reads a not-yet-run upstream's stale
// input (spec.md: "the graph is recomputed by invoking run in topological
// order"). It wraps the first failing block's error with its id and
// ProcessType (spec.md §7: "Blocks... wrap them with block context and
// re-raise").
func (p *Pipeline) RunAll() ([]ProcessResult, error) {
	ids, err := p.graph.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	results := make([]ProcessResult, 0, len(ids))
	for _, id := range ids {
		block, ok := p.blocks[id]
		if !ok {
			continue
		}
		result, err := block.Run()
		if err != nil {
			return results, fmt.Errorf("pipeline stage %s (%s): %w", id, block.ProcessType(), err)
		}
		results = append(results, result)
	}
	return results, nil
}
