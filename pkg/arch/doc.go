// Package arch defines the architecture config consumed by the Markdown and
// diagram generators, and loads it from JSON, YAML or TOML files.
//
// # Format
//
// Every top-level field is optional:
//
//	{
//	  "model_name": "DeepSeek-V3",
//	  "title": "DeepSeek-V3 Architecture",
//	  "source": "https://github.com/deepseek-ai/DeepSeek-V3",
//	  "overview": "Mixture-of-Experts transformer ...",
//	  "metadata": {"total_params": "671B", "activated_params": "37B", "num_layers": 61},
//	  "stages": [
//	    {"name": "Embedding", "blocks": [{"type": "Token Embedding", "details": "vocab 129K"}]},
//	    {"name": "Decoder", "blocks": [{"type": "MLA Attention"}, {"type": "MoE FFN"}]}
//	  ],
//	  "custom_nodes": [{"id": "mtp", "label": "Multi-Token Prediction", "color": "plum"}],
//	  "custom_edges": [{"from": "stage_1_block_1", "to": "mtp", "label": "shared"}],
//	  "references": ["DeepSeek-V3 Technical Report"]
//	}
//
// # Presence
//
// Scalar fields are pointers so an absent key and a present-but-empty value
// are distinguishable; generators branch on that difference (an empty
// "overview" is printed verbatim, an absent one is synthesized). Slices are
// nil when their key is absent.
//
// [Metadata] keeps the key order of the input document, since generic
// metadata rows are rendered in the order they were written.
//
// # Validation
//
// [Validate] performs required-field checks for a given generator and
// nothing more: layer shapes, duplicate ids and dangling edges are accepted
// as written.
package arch
