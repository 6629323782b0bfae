// Package diagram converts an architecture config into a Graphviz DOT graph.
//
// # Structure
//
// Every stage becomes a node ("stage_<i>") followed by a chain of block
// nodes ("stage_<i>_block_<j>"):
//
//	stage_0 -> stage_0_block_0 -> stage_0_block_1 -> stage_1 -> stage_1_block_0
//
// The link into the next stage starts from the last block of the previous
// stage, or from the previous stage node itself when it has no blocks.
// Custom nodes and edges are appended as written, which is how skip
// connections and shared components are expressed.
//
// # Colors
//
// Block fill colors come from an ordered substring table on the lowercased
// block type; the first matching rule wins (see [ColorFor]):
//
//	attention   -> lightgreen
//	mamba       -> lightcoral
//	mlp, ffn    -> lightyellow
//	otherwise   -> lightblue
//
// So "Attention-MLP" is green, not yellow.
//
// # Usage
//
//	g, err := diagram.Build(cfg)
//	dot := g.DOT()
//	err = diagram.WriteDOT(diagram.DOTPath("out/model"), dot)
//
// Rendering the DOT file to an image is handled by the render package.
package diagram
