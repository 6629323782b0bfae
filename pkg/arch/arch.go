package arch

import (
	"slices"
	"strconv"
	"strings"
)

// Config is the architecture description shared by both generators.
type Config struct {
	ModelName   *string      `json:"model_name,omitempty"`
	Title       *string      `json:"title,omitempty"`
	Source      *string      `json:"source,omitempty"`
	Overview    *string      `json:"overview,omitempty"`
	Metadata    Metadata     `json:"metadata,omitempty"`
	Stages      []Stage      `json:"stages,omitempty"`
	CustomNodes []CustomNode `json:"custom_nodes,omitempty"`
	CustomEdges []CustomEdge `json:"custom_edges,omitempty"`
	References  []string     `json:"references,omitempty"`
}

// Stage is an ordered top-level phase of the architecture.
type Stage struct {
	Name   *string `json:"name,omitempty"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block is a leaf unit within a stage.
type Block struct {
	Type    *string `json:"type,omitempty"`
	Details *string `json:"details,omitempty"`
}

// CustomNode is a diagram and documentation node outside the stage chain.
type CustomNode struct {
	ID          *string `json:"id,omitempty"`
	Label       *string `json:"label,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// CustomEdge is an extra connection between any two node ids.
type CustomEdge struct {
	From  *string `json:"from,omitempty"`
	To    *string `json:"to,omitempty"`
	Label *string `json:"label,omitempty"`
}

// TypeCount is the number of blocks sharing one type.
type TypeCount struct {
	Type  string
	Count int
}

// String returns the pointed-to value or "" when p is nil.
func String(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Ptr returns a pointer to s. Handy for building configs in code.
func Ptr(s string) *string { return &s }

// DisplayName returns the stage name, or "Stage <i+1>" when the name is absent.
// i is the zero-based stage index.
func (s Stage) DisplayName(i int) string {
	if s.Name != nil {
		return *s.Name
	}
	return "Stage " + strconv.Itoa(i+1)
}

// TypeOr returns the block type, or def when the type is absent.
func (b Block) TypeOr(def string) string {
	if b.Type != nil {
		return *b.Type
	}
	return def
}

// HasDetails reports whether details are present and non-empty.
func (b Block) HasDetails() bool {
	return b.Details != nil && *b.Details != ""
}

// DisplayLabel returns the label, falling back to the id and then "Unknown".
func (n CustomNode) DisplayLabel() string {
	switch {
	case n.Label != nil:
		return *n.Label
	case n.ID != nil:
		return *n.ID
	default:
		return "Unknown"
	}
}

// BlockCount returns the total number of blocks across all stages.
func (c *Config) BlockCount() int {
	n := 0
	for _, s := range c.Stages {
		n += len(s.Blocks)
	}
	return n
}

// BlockCounts groups blocks by type and returns the counts sorted by type name.
// Blocks without a type are skipped.
func (c *Config) BlockCounts() []TypeCount {
	counts := make(map[string]int)
	for _, s := range c.Stages {
		for _, b := range s.Blocks {
			if b.Type == nil {
				continue
			}
			counts[*b.Type]++
		}
	}

	out := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypeCount{Type: t, Count: n})
	}
	slices.SortFunc(out, func(a, b TypeCount) int { return strings.Compare(a.Type, b.Type) })
	return out
}
