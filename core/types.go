// Package core defines the central Node, Edge and Graph types of a skills
// constellation: a fixed set of labelled nodes placed on a 2-D canvas and
// joined by undirected relationships.
//
// A Graph is immutable once built. Every accessor returns copies, so a single
// Graph can be shared freely between goroutines without locking.
//
// This file declares Category, Node, UsedIn, Edge, GraphOption,
// sentinel errors, and the option constructors.
//
// Errors:
//
//	ErrEmptyNodeID     - a node has an empty ID.
//	ErrDuplicateNode   - two nodes share an ID.
//	ErrUnknownNeighbor - a node declares a neighbour that does not exist.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrBadCategory     - a category name outside the fixed enumeration.
//	ErrBadScale        - a non-positive or non-finite coordinate scale.
//	ErrBadCoordinate   - a node with a NaN or infinite coordinate.
//	ErrBadLevel        - a node level outside 0..100.
package core

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a Node was declared with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that two nodes share the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownNeighbor indicates a declared neighbour that names no node.
	ErrUnknownNeighbor = errors.New("core: unknown neighbor")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadCategory indicates a category name outside the enumeration.
	ErrBadCategory = errors.New("core: unknown category")

	// ErrBadScale indicates a non-positive coordinate scale.
	ErrBadScale = errors.New("core: coordinate scale must be positive")

	// ErrBadCoordinate indicates a NaN or infinite X or Y.
	ErrBadCoordinate = errors.New("core: node coordinate must be finite")

	// ErrBadLevel indicates a proficiency level outside [MinLevel, MaxLevel].
	ErrBadLevel = errors.New("core: node level out of range")
)

// Bounds of Node.Level.
const (
	MinLevel = 0
	MaxLevel = 100
)

// Category is the fixed classification of a node.
type Category int

const (
	// Language is a programming language.
	Language Category = iota
	// Framework is a library or framework.
	Framework
	// Tool is a tool or platform.
	Tool
	// Concept is a broader field of knowledge.
	Concept
)

// Categories lists every Category in display order.
var Categories = []Category{Language, Framework, Tool, Concept}

var categoryNames = [...]string{"language", "framework", "tool", "concept"}

// categoryColors are the accent colours used when rendering each category.
var categoryColors = [...]string{"#3399FF", "#FFCB05", "#00FF94", "#FF6B9D"}

// String returns the lower-case category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// Color returns the hex accent colour of the category ("" if unknown).
func (c Category) Color() string {
	if c < 0 || int(c) >= len(categoryColors) {
		return ""
	}

	return categoryColors[c]
}

// ParseCategory maps a case-insensitive name to its Category.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadCategory, s)
}

// MarshalYAML encodes the category by name.
func (c Category) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a category name.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// UsedIn records where a skill has been applied.
type UsedIn struct {
	Projects []string `yaml:"projects,omitempty"`
	Jobs     []string `yaml:"jobs,omitempty"`
	Classes  []string `yaml:"classes,omitempty"`
}

// Node is a single labelled point of the constellation.
//
// X and Y are display coordinates before scaling. Neighbors is the declared
// adjacency; an edge exists when either endpoint declares the other.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string `yaml:"id"`

	// Name is the human-readable label.
	Name string `yaml:"name"`

	// Category classifies the node.
	Category Category `yaml:"category"`

	// Level is a proficiency score in [0, 100].
	Level int `yaml:"level,omitempty"`

	// X and Y are the display coordinates.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Neighbors lists declared neighbour IDs.
	Neighbors []string `yaml:"neighbors,omitempty"`

	// UsedIn lists the projects, jobs and classes the skill appears in.
	UsedIn UsedIn `yaml:"usedIn,omitempty"`
}

// clone returns a copy of n that shares no slices with it.
func (n Node) clone() Node {
	out := n
	out.Neighbors = append([]string(nil), n.Neighbors...)
	out.UsedIn = UsedIn{
		Projects: append([]string(nil), n.UsedIn.Projects...),
		Jobs:     append([]string(nil), n.UsedIn.Jobs...),
		Classes:  append([]string(nil), n.UsedIn.Classes...),
	}

	return out
}

// Edge is an undirected, weighted connection between two nodes.
//
// Edges are always canonical: From < To.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is the Euclidean distance between the scaled endpoints.
	Weight float64
}

// NewEdge builds the canonical Edge for the unordered pair {a, b}.
func NewEdge(a, b string, weight float64) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{From: a, To: b, Weight: weight}
}

// Key returns the canonical pair "from|to".
func (e Edge) Key() string { return e.From + "|" + e.To }

// String renders the edge as "from-to".
func (e Edge) String() string { return e.From + "-" + e.To }

// Other returns the endpoint opposite id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Less orders edges by weight, then by canonical pair.
func (e Edge) Less(o Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	if e.From != o.From {
		return e.From < o.From
	}

	return e.To < o.To
}

// GraphOption configures a Graph before it is built.
type GraphOption func(g *Graph)

// WithScale multiplies X by sx and Y by sy before weighting.
// Non-positive values are reported as ErrBadScale by NewGraph.
func WithScale(sx, sy float64) GraphOption {
	return func(g *Graph) { g.scaleX, g.scaleY = sx, sy }
}

// WithLenientNeighbors skips neighbour IDs that name no node instead of
// failing with ErrUnknownNeighbor.
func WithLenientNeighbors() GraphOption {
	return func(g *Graph) { g.lenient = true }
}

// Weigher computes the weight of the edge between two nodes. The nodes carry
// already-scaled coordinates.
type Weigher func(a, b Node) float64

// Euclidean is the default Weigher: straight-line distance on the canvas.
func Euclidean(a, b Node) float64 { return Distance(a.X, a.Y, b.X, b.Y) }

// WithWeigher replaces the Euclidean weighting. A nil Weigher is ignored.
func WithWeigher(w Weigher) GraphOption {
	return func(g *Graph) {
		if w != nil {
			g.weigher = w
		}
	}
}

// Graph is an immutable, undirected constellation.
//
// nodes is keyed by ID; order holds the IDs sorted ascending; adj is the
// symmetric adjacency derived from every declared neighbour list; edges is
// the canonical, weight-sorted edge list computed once at construction.
type Graph struct {
	// Configuration flags
	scaleX  float64
	scaleY  float64
	lenient bool
	weigher Weigher

	// Storage
	nodes map[string]Node
	order []string
	adj   map[string][]string
	edges []Edge
}
