// Package markdown renders an architecture config as a Markdown document.
//
// # Overview
//
// [Generate] is a single pass over an [arch.Config] that emits, in order:
//
//   - title and metadata header (source, parameter counts, paper)
//   - table of contents ("Key Innovations" only when custom nodes exist)
//   - architecture overview (verbatim, or a numbered list of stage names)
//   - detailed components, one heading per stage and per block
//   - key innovations, one heading per custom node
//   - configuration summary table (stage count, blocks per type, extra metadata)
//   - references
//
// The output is deterministic apart from the "**Generated:**" timestamp,
// which callers can pin through [Options.Now].
//
// # Companion Outputs
//
// [Diff] compares a previously written document with a fresh one, ignoring
// the timestamp line, so stale documentation can be detected in CI.
// [ToHTML] and [HTMLDocument] convert the Markdown with goldmark; heading
// ids match the table-of-contents anchors.
//
// [arch.Config]: github.com/matzehuels/archviz/pkg/arch.Config
package markdown
