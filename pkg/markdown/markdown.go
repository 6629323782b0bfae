package markdown

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/archviz/pkg/arch"
)

const (
	// DefaultFooter closes every generated document.
	DefaultFooter = "*Documentation generated by archviz*"

	// TimestampPrefix starts the only non-deterministic line of the output.
	TimestampPrefix = "**Generated:** "

	timeLayout = "2006-01-02 15:04:05"

	noDetails       = "_No additional details provided._"
	noInnovationDoc = "_Innovation details to be documented._"
)

// Options configures document generation.
type Options struct {
	// Now is the generation time printed in the header. Zero means time.Now().
	Now time.Time
	// Footer replaces [DefaultFooter] when non-empty.
	Footer string
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) footer() string {
	if o.Footer == "" {
		return DefaultFooter
	}
	return o.Footer
}

// Generate renders cfg as Markdown. model_name is required and every block
// needs a type; anything else missing just omits its section.
func Generate(cfg *arch.Config, opts Options) (string, error) {
	if err := arch.Validate(cfg, arch.TargetMarkdown); err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, cfg, opts.now())
	writeTOC(&b, cfg)
	writeOverview(&b, cfg)
	writeComponents(&b, cfg)
	writeInnovations(&b, cfg)
	writeSummary(&b, cfg)
	writeReferences(&b, cfg)

	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "\n%s\n", opts.footer())
	return b.String(), nil
}

func writeHeader(b *strings.Builder, cfg *arch.Config, now time.Time) {
	fmt.Fprintf(b, "# %s Architecture\n", *cfg.ModelName)
	fmt.Fprintf(b, "%s%s\n", TimestampPrefix, now.Format(timeLayout))

	if cfg.Source != nil {
		fmt.Fprintf(b, "**Source:** %s\n", *cfg.Source)
	}

	if cfg.Metadata != nil {
		if v, ok := cfg.Metadata.Get(arch.MetaTotalParams); ok {
			fmt.Fprintf(b, "**Total Parameters:** %s\n", v)
		}
		if v, ok := cfg.Metadata.Get(arch.MetaActivatedParams); ok {
			fmt.Fprintf(b, "**Activated Parameters:** %s\n", v)
		}
		if v, ok := cfg.Metadata.Get(arch.MetaPaper); ok {
			fmt.Fprintf(b, "**Paper:** %s\n", v)
		}
	}

	b.WriteString("\n---\n")
}

func writeTOC(b *strings.Builder, cfg *arch.Config) {
	b.WriteString("## Table of Contents\n")
	b.WriteString("- [Architecture Overview](#architecture-overview)\n")
	b.WriteString("- [Detailed Components](#detailed-components)\n")
	if len(cfg.CustomNodes) > 0 {
		b.WriteString("- [Key Innovations](#key-innovations)\n")
	}
	b.WriteString("- [Configuration Summary](#configuration-summary)\n")
	b.WriteString("\n---\n")
}

func writeOverview(b *strings.Builder, cfg *arch.Config) {
	b.WriteString("## Architecture Overview\n")
	if cfg.Overview != nil {
		fmt.Fprintf(b, "%s\n\n", *cfg.Overview)
		return
	}

	fmt.Fprintf(b, "The %s consists of the following stages:\n\n", *cfg.ModelName)
	for i, s := range cfg.Stages {
		fmt.Fprintf(b, "%d. %s\n", i+1, s.DisplayName(i))
	}
	b.WriteString("\n")
}

func writeComponents(b *strings.Builder, cfg *arch.Config) {
	b.WriteString("## Detailed Components\n")

	for i, s := range cfg.Stages {
		fmt.Fprintf(b, "### Stage %d: %s\n", i+1, s.DisplayName(i))
		for _, blk := range s.Blocks {
			fmt.Fprintf(b, "#### %s\n", *blk.Type)
			writeDetails(b, blk)
		}
		b.WriteString("\n")
	}
}

// writeDetails prints a single line as a paragraph and several lines as a
// bullet list, skipping blank lines.
func writeDetails(b *strings.Builder, blk arch.Block) {
	if !blk.HasDetails() {
		fmt.Fprintf(b, "%s\n\n", noDetails)
		return
	}

	lines := strings.Split(strings.TrimSpace(*blk.Details), "\n")
	if len(lines) == 1 {
		fmt.Fprintf(b, "%s\n\n", lines[0])
		return
	}

	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintf(b, "- %s\n", line)
		}
	}
	b.WriteString("\n")
}

func writeInnovations(b *strings.Builder, cfg *arch.Config) {
	if len(cfg.CustomNodes) == 0 {
		return
	}

	b.WriteString("## Key Innovations\n")
	for _, n := range cfg.CustomNodes {
		fmt.Fprintf(b, "### %s\n", n.DisplayLabel())
		if n.Description != nil {
			fmt.Fprintf(b, "%s\n\n", *n.Description)
		} else {
			fmt.Fprintf(b, "%s\n\n", noInnovationDoc)
		}
	}
}

// headerKeys are metadata keys printed in the header rather than the summary table.
var headerKeys = map[string]bool{
	arch.MetaPaper:           true,
	arch.MetaTotalParams:     true,
	arch.MetaActivatedParams: true,
}

func writeSummary(b *strings.Builder, cfg *arch.Config) {
	b.WriteString("## Configuration Summary\n")
	b.WriteString("| Component | Specification |\n")
	b.WriteString("|-----------|---------------|\n")
	fmt.Fprintf(b, "| Total Stages | %d |\n", len(cfg.Stages))

	for _, tc := range cfg.BlockCounts() {
		fmt.Fprintf(b, "| %s | %d |\n", cell(tc.Type), tc.Count)
	}

	caser := cases.Title(language.English)
	for _, e := range cfg.Metadata {
		if headerKeys[e.Key] {
			continue
		}
		key := caser.String(strings.ReplaceAll(e.Key, "_", " "))
		fmt.Fprintf(b, "| %s | %s |\n", cell(key), cell(e.Value))
	}

	b.WriteString("\n")
}

func writeReferences(b *strings.Builder, cfg *arch.Config) {
	b.WriteString("## References\n")
	if cfg.Source != nil {
		fmt.Fprintf(b, "- **Main Source:** %s\n", *cfg.Source)
	}
	if v, ok := cfg.Metadata.Get(arch.MetaPaper); ok {
		fmt.Fprintf(b, "- **Paper:** %s\n", v)
	}
	for _, ref := range cfg.References {
		fmt.Fprintf(b, "- %s\n", ref)
	}
}

// cell escapes pipes so a value cannot split a table row.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
