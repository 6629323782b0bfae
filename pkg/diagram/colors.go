package diagram

import "strings"

// Fill colors.
const (
	ColorStage  = "lightyellow"
	ColorBlock  = "lightblue"
	ColorCustom = "lightgray"
	ColorAttn   = "lightgreen"
	ColorMamba  = "lightcoral"
	ColorMLP    = "lightyellow"
)

type colorRule struct {
	substrings []string
	color      string
}

// blockColors is checked top to bottom.
var blockColors = []colorRule{
	{substrings: []string{"attention"}, color: ColorAttn},
	{substrings: []string{"mamba"}, color: ColorMamba},
	{substrings: []string{"mlp", "ffn"}, color: ColorMLP},
}

// ColorFor returns the fill color for a block type: the color of the first
// rule with a substring contained in the lowercased type, else [ColorBlock].
func ColorFor(blockType string) string {
	t := strings.ToLower(blockType)
	for _, r := range blockColors {
		for _, s := range r.substrings {
			if strings.Contains(t, s) {
				return r.color
			}
		}
	}
	return ColorBlock
}
