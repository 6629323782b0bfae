package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/arch"
	"github.com/matzehuels/archviz/pkg/diagram"
	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/render"
)

// diagramOpts holds the command-line flags for the diagram command.
type diagramOpts struct {
	output  string // output path stem; the extension is replaced
	format  string // png, svg or pdf
	engine  string // dot or builtin
	dotOnly bool   // write the DOT file and stop
}

// diagramCommand creates the diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	opts := diagramOpts{
		format: string(render.FormatPNG),
		engine: render.EngineDot,
	}

	cmd := &cobra.Command{
		Use:   "diagram [config]",
		Short: "Generate a Graphviz diagram from an architecture config",
		Long: `Generate a Graphviz diagram from an architecture config.

The DOT file is written to <output>.dot and then rendered to
<output>.<format>. Rendering uses the Graphviz dot command by default;
--engine builtin lays out the graph in-process instead.

If rendering fails the DOT file is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = stringFlag(cmd, "format", opts.format, c.Settings.Format)
			opts.engine = stringFlag(cmd, "engine", opts.engine, c.Settings.Engine)
			return c.runDiagram(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (extension is replaced)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png (default), svg, pdf")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "render engine: dot (default), builtin")
	cmd.Flags().BoolVar(&opts.dotOnly, "dot-only", false, "only write the DOT file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runDiagram(ctx context.Context, input string, opts diagramOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	var r render.Renderer
	if !opts.dotOnly {
		if r, err = c.newRenderer(opts.engine); err != nil {
			return err
		}
	}

	cfg, err := arch.Load(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", input, "stages", len(cfg.Stages), "blocks", cfg.BlockCount())

	g, err := diagram.Build(cfg)
	if err != nil {
		return err
	}

	dotPath := diagram.DOTPath(opts.output)
	if err := diagram.WriteDOT(dotPath, g.DOT()); err != nil {
		return err
	}
	stats := g.Stats()
	printSuccess("Generated DOT file: %s", dotPath)
	printStats(
		statCount{stats.Stages, "stages"},
		statCount{stats.Blocks, "blocks"},
		statCount{stats.Custom, "custom nodes"},
		statCount{stats.Edges, "edges"},
	)

	if opts.dotOnly {
		printNextStep("Render it with", fmt.Sprintf("%s render %s -f %s", appName, dotPath, format))
		return nil
	}

	outPath, err := renderDOT(ctx, r, dotPath, format, render.OutputPath(dotPath, format))
	if err != nil {
		return err
	}
	printSuccess("Generated diagram: %s", outPath)
	return nil
}
