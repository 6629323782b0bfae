package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/archviz/pkg/buildinfo"
)

const (
	// appName is the application name used for directories and display.
	appName = "archviz"

	// envPrefix prefixes environment variables that override settings.
	envPrefix = "ARCHVIZ"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Settings *Settings

	verbose    bool
	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Settings: defaultSettings(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "archviz documents model architectures",
		Long: `archviz turns a JSON, YAML or TOML description of a neural-network
architecture into Markdown documentation and a Graphviz diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(viper.New(), c.configFile)
			if err != nil {
				return err
			}
			c.Settings = s
			if c.verbose || s.Verbose {
				c.SetLogLevel(LogDebug)
			}
			if s.File != "" {
				c.Logger.Debug("loaded settings", "file", s.File)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "settings file (default $XDG_CONFIG_HOME/archviz/config.yaml)")

	root.AddCommand(c.markdownCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the settings directory using XDG standard (~/.config/archviz/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// stringFlag returns the flag value when the user set it, otherwise the
// setting, falling back to the flag default when the setting is empty.
func stringFlag(cmd *cobra.Command, name, flagValue, setting string) string {
	if cmd.Flags().Changed(name) || setting == "" {
		return flagValue
	}
	return setting
}
