package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/arch"
	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/markdown"
)

// markdownOpts holds the command-line flags for the markdown command.
type markdownOpts struct {
	output string // output file; empty means <model_name>_architecture.md next to the config
	check  bool   // compare against the existing file instead of writing
	html   string // optional HTML companion file
}

// markdownCommand creates the markdown command.
func (c *CLI) markdownCommand() *cobra.Command {
	var opts markdownOpts

	cmd := &cobra.Command{
		Use:   "markdown [config]",
		Short: "Generate Markdown documentation from an architecture config",
		Long: `Generate Markdown documentation from an architecture config.

The document has a metadata header, a table of contents, an overview, one
section per stage and block, the custom components, a configuration summary
table and references. Without -o it is written next to the config as
<model_name>_architecture.md.

With --check nothing is written: the command fails with a diff when the
existing file is out of date. The generation timestamp is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMarkdown(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <model_name>_architecture.md next to the config)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if the output file is out of date instead of writing it")
	cmd.Flags().StringVar(&opts.html, "html", "", "also write the document as HTML to this file")

	return cmd
}

func (c *CLI) runMarkdown(ctx context.Context, input string, opts markdownOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := arch.Load(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", input, "stages", len(cfg.Stages), "blocks", cfg.BlockCount())

	doc, err := markdown.Generate(cfg, markdown.Options{})
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = markdown.DefaultOutputPath(input, arch.String(cfg.ModelName))
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}

	if opts.check {
		return checkMarkdown(output, doc)
	}

	if err := markdown.Write(output, doc); err != nil {
		return err
	}
	printSuccess("Markdown documentation generated: %s", output)
	printDetail("Lines: %d", lineCount(doc))
	printDetail("Size: %d bytes", len(doc))

	if opts.html != "" {
		page, err := markdown.HTMLDocument(arch.String(cfg.ModelName), doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.html, page, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.html, err)
		}
		printFile(opts.html)
	}

	return nil
}

// checkMarkdown compares doc with the file at path and prints a unified diff
// when they differ.
func checkMarkdown(path, doc string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.New(errors.ErrCodeStaleOutput, "%s has not been generated", path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	diff, err := markdown.Diff(string(existing), doc, path, "generated")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "diff %s", path)
	}
	if diff == "" {
		printSuccess("%s is up to date", path)
		return nil
	}

	fmt.Print(diff)
	printWarning("%s is out of date", path)
	return errors.New(errors.ErrCodeStaleOutput, "%s is out of date", path)
}

// lineCount counts lines the way a text editor does: a trailing newline
// does not start a new line.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return len(strings.Split(strings.TrimSuffix(s, "\n"), "\n"))
}
