// Package skills ships the built-in portfolio skill constellation and reads
// user datasets in the same YAML shape.
//
// A dataset is a single document with a top-level "nodes" list; every entry
// decodes into a core.Node:
//
//	nodes:
//	  - id: go
//	    name: Go
//	    category: language
//	    level: 90
//	    x: 20
//	    y: 30
//	    neighbors: [docker]
//	    usedIn:
//	      projects: [constellation]
//
// Coordinates are percentages of the desktop canvas. Graph and LoadGraph
// scale them by ScaleX × ScaleY, so weights are distances on a 1200 × 1000
// canvas.
package skills

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/constellation/core"
)

const (
	// DefaultRoot seeds Prim on the built-in constellation.
	DefaultRoot = "ts"

	// ScaleX and ScaleY map percentage coordinates onto the desktop canvas.
	ScaleX = 12.0
	ScaleY = 10.0
)

// ErrEmptyDataset is returned when a dataset declares no nodes.
var ErrEmptyDataset = errors.New("skills: dataset has no nodes")

//go:embed constellation.yaml
var builtin []byte

// dataset is the on-disk document.
type dataset struct {
	Nodes []core.Node `yaml:"nodes"`
}

// Nodes returns the built-in constellation in declaration order.
func Nodes() []core.Node {
	nodes, err := Load(bytes.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("skills: built-in dataset: %v", err))
	}

	return nodes
}

// Graph builds the built-in constellation on the desktop canvas.
func Graph(opts ...core.GraphOption) (*core.Graph, error) {
	return build(Nodes(), opts)
}

// Load decodes a YAML dataset. Unknown fields are rejected.
func Load(r io.Reader) ([]core.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("skills: decode dataset: %w", err)
	}
	if len(ds.Nodes) == 0 {
		return nil, ErrEmptyDataset
	}

	return ds.Nodes, nil
}

// LoadFile decodes the YAML dataset at path.
func LoadFile(path string) ([]core.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("skills: open dataset: %w", err)
	}
	defer f.Close()

	nodes, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return nodes, nil
}

// LoadGraph reads the dataset at path and builds it on the desktop canvas.
func LoadGraph(path string, opts ...core.GraphOption) (*core.Graph, error) {
	nodes, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return build(nodes, opts)
}

// build applies the desktop scale ahead of caller options so they can override it.
func build(nodes []core.Node, opts []core.GraphOption) (*core.Graph, error) {
	all := append([]core.GraphOption{core.WithScale(ScaleX, ScaleY)}, opts...)

	return core.NewGraph(nodes, all...)
}

// Group is one category section of the list view.
type Group struct {
	Category core.Category
	Nodes    []core.Node
}

// Grouped splits nodes by category in enumeration order, sorting each group
// by name (then ID). Empty categories are omitted.
func Grouped(nodes []core.Node) []Group {
	buckets := make(map[core.Category][]core.Node, len(core.Categories))
	for _, n := range nodes {
		buckets[n.Category] = append(buckets[n.Category], n)
	}

	groups := make([]Group, 0, len(buckets))
	for _, c := range core.Categories {
		list := buckets[c]
		if len(list) == 0 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Name != list[j].Name {
				return list[i].Name < list[j].Name
			}
			return list[i].ID < list[j].ID
		})
		groups = append(groups, Group{Category: c, Nodes: list})
	}

	return groups
}
