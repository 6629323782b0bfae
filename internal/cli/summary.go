package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/arch"
	"github.com/matzehuels/archviz/pkg/diagram"
)

// summaryCommand creates the summary command.
func (c *CLI) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [config]",
		Short: "Print stage, block and metadata statistics for a config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSummary(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runSummary(ctx context.Context, input string) error {
	cfg, err := arch.Load(input)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("loaded config", "path", input)

	name := arch.String(cfg.ModelName)
	if name == "" {
		name = "(unnamed)"
	}
	printHeading(name)
	if cfg.Title != nil {
		printKeyValue("Title", *cfg.Title)
	}
	if cfg.Source != nil {
		printKeyValue("Source", *cfg.Source)
	}
	printKeyNumber("Stages", len(cfg.Stages))
	printKeyNumber("Blocks", cfg.BlockCount())
	printKeyNumber("Custom nodes", len(cfg.CustomNodes))
	printKeyNumber("Custom edges", len(cfg.CustomEdges))

	if counts := cfg.BlockCounts(); len(counts) > 0 {
		printNewline()
		printHeading("Block types")
		width := keyWidth
		for _, tc := range counts {
			width = max(width, len(tc.Type))
		}
		for _, tc := range counts {
			printKeyValueWidth(tc.Type, fmt.Sprintf("%d  %s", tc.Count, StyleDim.Render(diagram.ColorFor(tc.Type))), width)
		}
	}

	if len(cfg.Metadata) > 0 {
		printNewline()
		printHeading("Metadata")
		width := keyWidth
		for _, m := range cfg.Metadata {
			width = max(width, len(m.Key))
		}
		for _, m := range cfg.Metadata {
			printKeyValueWidth(m.Key, m.Value, width)
		}
	}

	return nil
}
