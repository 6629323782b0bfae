package diagram

import (
	"fmt"

	"github.com/matzehuels/archviz/pkg/arch"
)

// DefaultBlockType labels blocks without a type.
const DefaultBlockType = "Block"

// Kind tells where a node came from.
type Kind string

const (
	KindStage  Kind = "stage"
	KindBlock  Kind = "block"
	KindCustom Kind = "custom"
)

// Node is one DOT node statement.
type Node struct {
	ID    string
	Label string
	Color string
	Kind  Kind
}

// Edge is one DOT edge statement. An empty Label emits no label attribute.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is the diagram ready to be printed as DOT.
type Graph struct {
	Title *string
	Nodes []Node
	Edges []Edge
}

// StageID returns the node id of stage i.
func StageID(i int) string { return fmt.Sprintf("stage_%d", i) }

// BlockID returns the node id of block j in stage i.
func BlockID(i, j int) string { return fmt.Sprintf("stage_%d_block_%d", i, j) }

// Build lays out cfg as nodes and edges. Custom nodes need an id and custom
// edges need both ends; nothing else is required.
func Build(cfg *arch.Config) (*Graph, error) {
	if err := arch.Validate(cfg, arch.TargetDiagram); err != nil {
		return nil, err
	}

	g := &Graph{Title: cfg.Title}

	for i, s := range cfg.Stages {
		stageID := StageID(i)
		g.Nodes = append(g.Nodes, Node{ID: stageID, Label: s.DisplayName(i), Color: ColorStage, Kind: KindStage})

		prev := stageID
		for j, b := range s.Blocks {
			blockID := BlockID(i, j)
			typ := b.TypeOr(DefaultBlockType)
			label := typ
			if b.HasDetails() {
				label += "\n" + *b.Details
			}
			g.Nodes = append(g.Nodes, Node{ID: blockID, Label: label, Color: ColorFor(typ), Kind: KindBlock})
			g.Edges = append(g.Edges, Edge{From: prev, To: blockID})
			prev = blockID
		}

		if i > 0 {
			g.Edges = append(g.Edges, Edge{From: lastNode(cfg.Stages[i-1], i-1), To: stageID})
		}
	}

	for _, n := range cfg.CustomNodes {
		color := ColorCustom
		if n.Color != nil {
			color = *n.Color
		}
		g.Nodes = append(g.Nodes, Node{ID: *n.ID, Label: n.DisplayLabel(), Color: color, Kind: KindCustom})
	}

	for _, e := range cfg.CustomEdges {
		g.Edges = append(g.Edges, Edge{From: *e.From, To: *e.To, Label: arch.String(e.Label)})
	}

	return g, nil
}

// lastNode is where the chain leaves stage i: its last block, or the stage
// node when it has none.
func lastNode(s arch.Stage, i int) string {
	if n := len(s.Blocks); n > 0 {
		return BlockID(i, n-1)
	}
	return StageID(i)
}

// NodeCount returns the number of nodes of the given kind, or all nodes when kind is empty.
func (g *Graph) NodeCount(kind Kind) int {
	if kind == "" {
		return len(g.Nodes)
	}
	n := 0
	for _, nd := range g.Nodes {
		if nd.Kind == kind {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Stats counts a graph's nodes by kind and its edges.
type Stats struct {
	Stages int
	Blocks int
	Custom int
	Edges  int
}

// Stats summarizes g for status output.
func (g *Graph) Stats() Stats {
	return Stats{
		Stages: g.NodeCount(KindStage),
		Blocks: g.NodeCount(KindBlock),
		Custom: g.NodeCount(KindCustom),
		Edges:  len(g.Edges),
	}
}
