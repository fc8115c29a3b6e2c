package core

import (
	"math"
	"sort"
)

// Distance returns the Euclidean distance between two scaled positions.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// weight computes the edge weight between two known node IDs.
func (g *Graph) weight(a, b string) float64 {
	na, nb := g.nodes[a], g.nodes[b]
	na.X, na.Y = na.X*g.scaleX, na.Y*g.scaleY
	nb.X, nb.Y = nb.X*g.scaleX, nb.Y*g.scaleY

	return g.weigher(na, nb)
}

// collectEdges emits each unordered pair once (From < To) and sorts the
// result by weight, then by canonical pair, so every call site sees the same
// deterministic order.
func (g *Graph) collectEdges() []Edge {
	var edges []Edge
	for _, id := range g.order {
		for _, nb := range g.adj[id] {
			// adj is symmetric: keep only the canonical orientation.
			if id < nb {
				edges = append(edges, Edge{From: id, To: nb, Weight: g.weight(id, nb)})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })

	return edges
}

// AllEdges returns every distinct edge sorted ascending by weight, ties broken
// by canonical pair.
// Complexity: O(E) (the list is computed once by NewGraph).
func (g *Graph) AllEdges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// IncidentEdges returns the canonical edges touching id in AllEdges order.
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	out := make([]Edge, 0, len(g.adj[id]))
	for _, nb := range g.adj[id] {
		out = append(out, NewEdge(id, nb, g.weight(id, nb)))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out, nil
}

// Weight returns the weight of the edge {a, b}.
func (g *Graph) Weight(a, b string) (float64, error) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0, ErrNodeNotFound
	}

	return g.weight(a, b), nil
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
