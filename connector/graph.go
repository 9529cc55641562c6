package connector

import "github.com/pjazdzyk/hvac-engine-sub005/xerrors"

// Node is the minimal capability a Graph needs from a process block: a
// stable identity.
type Node interface {
	NodeID() string
}

// Graph tracks block registration order and their upstream dependencies so
// that process.Pipeline.RunAll can execute every block in a valid
// topological order.
// Cycles are rejected at connection time via DFS on the partially built
// graph, per spec.md §9, rather than discovered only when a Run() deadlocks
// on an unset input.
type Graph struct {
	nodes   []string
	upstream map[string][]string
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{upstream: make(map[string][]string)}
}

// AddNode registers a node id if it is not already present.
func (g *Graph) AddNode(id string) {
	if _, ok := g.upstream[id]; ok {
		return
	}
	g.nodes = append(g.nodes, id)
	g.upstream[id] = nil
}

// Connect records that `to` reads from `from` (from -> to edge) and rejects
// the connection if it would introduce a cycle.
func (g *Graph) Connect(from, to string) error {
	g.AddNode(from)
	g.AddNode(to)
	g.upstream[to] = append(g.upstream[to], from)
	if g.hasCycleFrom(to) {
		g.upstream[to] = g.upstream[to][:len(g.upstream[to])-1]
		return xerrors.IncompatibleState("connecting %q to %q would introduce a cycle", from, to)
	}
	return nil
}

// hasCycleFrom reports whether a cycle is reachable starting a DFS at id,
// following upstream edges.
func (g *Graph) hasCycleFrom(id string) bool {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)
	var walk func(string) bool
	walk = func(n string) bool {
		if visiting[n] {
			return true
		}
		if visited[n] {
			return false
		}
		visiting[n] = true
		for _, up := range g.upstream[n] {
			if walk(up) {
				return true
			}
		}
		visiting[n] = false
		visited[n] = true
		return false
	}
	return walk(id)
}

// TopologicalOrder returns the registered node ids ordered so that every
// node appears after all of its upstream dependencies.
func (g *Graph) TopologicalOrder() ([]string, error) {
	order := make([]string, 0, len(g.nodes))
	visiting := make(map[string]bool)
	visited := make(map[string]bool)
	var visit func(string) error
	visit = func(n string) error {
		if visited[n] {
			return nil
		}
		if visiting[n] {
			return xerrors.IncompatibleState("cycle detected at node %q during topological sort", n)
		}
		visiting[n] = true
		for _, up := range g.upstream[n] {
			if err := visit(up); err != nil {
				return err
			}
		}
		visiting[n] = false
		visited[n] = true
		order = append(order, n)
		return nil
	}
	for _, n := range g.nodes {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return order, nil
}
