package core

import (
	"fmt"
	"math"
	"sort"
)

// NewGraph builds an immutable Graph from nodes.
//
// Steps:
//  1. Apply options (default scale 1×1, strict neighbours).
//  2. Validate nodes: non-empty unique IDs, finite coordinates, level in 0..100.
//  3. Symmetrise adjacency: a pair is connected if either side declares it.
//     Self-references are dropped; unknown neighbours fail unless lenient.
//  4. Weight and sort the canonical edge list once.
//
// Complexity: O(V + D log D) where D is the total number of declarations.
func NewGraph(nodes []Node, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		scaleX:  1,
		scaleY:  1,
		weigher: Euclidean,
		nodes:   make(map[string]Node, len(nodes)),
		order:   make([]string, 0, len(nodes)),
		adj:     make(map[string][]string, len(nodes)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !validScale(g.scaleX) || !validScale(g.scaleY) {
		return nil, ErrBadScale
	}

	for _, n := range nodes {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		if !finite(n.X) || !finite(n.Y) {
			return nil, fmt.Errorf("%w: %q at (%v, %v)", ErrBadCoordinate, n.ID, n.X, n.Y)
		}
		if n.Level < MinLevel || n.Level > MaxLevel {
			return nil, fmt.Errorf("%w: %q has %d", ErrBadLevel, n.ID, n.Level)
		}
		g.nodes[n.ID] = n.clone()
		g.order = append(g.order, n.ID)
	}
	sort.Strings(g.order)

	// seen[a][b] guards against recording the same pair twice when both
	// endpoints declare each other.
	seen := make(map[string]map[string]bool, len(nodes))
	link := func(a, b string) {
		if seen[a] == nil {
			seen[a] = make(map[string]bool)
		}
		if seen[a][b] {
			return
		}
		seen[a][b] = true
		g.adj[a] = append(g.adj[a], b)
	}
	for _, id := range g.order {
		for _, nb := range g.nodes[id].Neighbors {
			if nb == id {
				continue
			}
			if _, ok := g.nodes[nb]; !ok {
				if g.lenient {
					continue
				}

				return nil, fmt.Errorf("%w: %q declared by %q", ErrUnknownNeighbor, nb, id)
			}
			link(id, nb)
			link(nb, id)
		}
	}
	for id := range g.adj {
		sort.Strings(g.adj[id])
	}

	g.edges = g.collectEdges()

	return g, nil
}

// FromEdges builds a Graph whose topology and weights are given explicitly,
// ignoring coordinates. Each edge is canonicalised; a repeated pair keeps the
// last weight. Extra IDs in isolated become nodes without edges.
//
// All nodes are placed in the Concept category at the origin.
func FromEdges(edges []Edge, isolated ...string) (*Graph, error) {
	weights := make(map[string]float64, len(edges))
	neighbors := make(map[string][]string)
	var ids []string
	touch := func(id string) {
		if _, ok := neighbors[id]; !ok {
			neighbors[id] = nil
			ids = append(ids, id)
		}
	}
	for _, e := range edges {
		c := NewEdge(e.From, e.To, e.Weight)
		touch(c.From)
		touch(c.To)
		weights[c.Key()] = c.Weight
		neighbors[c.From] = append(neighbors[c.From], c.To)
	}
	for _, id := range isolated {
		touch(id)
	}

	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, Node{ID: id, Name: id, Category: Concept, Neighbors: neighbors[id]})
	}

	return NewGraph(nodes, WithWeigher(func(a, b Node) float64 {
		return weights[NewEdge(a.ID, b.ID, 0).Key()]
	}))
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func validScale(s float64) bool {
	return s > 0 && finite(s)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns copies of every node, sorted by ID.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id].clone())
	}

	return out
}

// IDs returns every node ID in ascending order.
func (g *Graph) IDs() []string {
	return append([]string(nil), g.order...)
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return n.clone(), true
}

// HasNode reports whether id names a node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Neighbors returns the symmetric neighbour set of id, sorted ascending.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	return append([]string(nil), g.adj[id]...), nil
}

// Degree returns the number of distinct neighbours of id (0 if absent).
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// Connected reports whether a and b share an edge.
func (g *Graph) Connected(a, b string) bool {
	nbs := g.adj[a]
	i := sort.SearchStrings(nbs, b)

	return i < len(nbs) && nbs[i] == b
}

// Position returns the scaled display coordinates of id.
func (g *Graph) Position(id string) (x, y float64, err error) {
	n, ok := g.nodes[id]
	if !ok {
		return 0, 0, ErrNodeNotFound
	}

	return n.X * g.scaleX, n.Y * g.scaleY, nil
}

// MostConnected returns the node with the highest degree, ties broken by the
// lowest ID. It returns "" for an empty graph.
func (g *Graph) MostConnected() string {
	best, bestDeg := "", -1
	for _, id := range g.order {
		if d := len(g.adj[id]); d > bestDeg {
			best, bestDeg = id, d
		}
	}

	return best
}
