package prim_kruskal

// UnionFind is a disjoint-set forest over string IDs with path compression
// and union by rank.
//
// Find is iterative: a first pass walks to the root, a second pass points
// every node on the walked path directly at it.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
	size   map[string]int
	sets   int
}

// NewUnionFind creates one singleton set per ID. Duplicate IDs are ignored.
// Complexity: O(n).
func NewUnionFind(ids []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		size:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.Add(id)
	}

	return uf
}

// Add inserts id as a singleton set if it is not present yet.
func (uf *UnionFind) Add(id string) {
	if _, ok := uf.parent[id]; ok {
		return
	}
	uf.parent[id] = id
	uf.size[id] = 1
	uf.sets++
}

// Has reports whether id was added.
func (uf *UnionFind) Has(id string) bool {
	_, ok := uf.parent[id]

	return ok
}

// Find returns the representative of id's set. Unknown IDs are added first.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(id string) string {
	uf.Add(id)

	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression.
	for id != root {
		next := uf.parent[id]
		uf.parent[id] = root
		id = next
	}

	return root
}

// Union merges the sets of a and b. It reports false when they already
// share a set, which for Kruskal means the edge would close a cycle.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(a, b string) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	// Attach the lower-rank tree under the higher-rank root.
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	delete(uf.size, rb)
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	uf.sets--

	return true
}

// Connected reports whether a and b share a set.
func (uf *UnionFind) Connected(a, b string) bool { return uf.Find(a) == uf.Find(b) }

// Size returns the number of elements in id's set.
func (uf *UnionFind) Size(id string) int { return uf.size[uf.Find(id)] }

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Largest returns the size of the largest set (0 when empty).
func (uf *UnionFind) Largest() int {
	best := 0
	for _, s := range uf.size {
		if s > best {
			best = s
		}
	}

	return best
}
