package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/render"
)

// Settings are user preferences for the tool itself. They pick defaults for
// flags and never change generated content.
type Settings struct {
	Format  string // default image format for diagram and render
	Engine  string // default render engine
	DotPath string // dot executable override
	Verbose bool

	File string // settings file that was read, if any
}

func defaultSettings() *Settings {
	return &Settings{
		Format: string(render.FormatPNG),
		Engine: render.EngineDot,
	}
}

// loadSettings reads settings from file, or from config.yaml in the
// settings directory when file is empty, then applies ARCHVIZ_* variables.
// A missing default file is not an error; a missing explicit file is.
func loadSettings(v *viper.Viper, file string) (*Settings, error) {
	d := defaultSettings()
	v.SetDefault("format", d.Format)
	v.SetDefault("engine", d.Engine)
	v.SetDefault("dot_path", "")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read settings %s", file)
		}
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read settings")
			}
		}
	}

	return &Settings{
		Format:  v.GetString("format"),
		Engine:  v.GetString("engine"),
		DotPath: v.GetString("dot_path"),
		Verbose: v.GetBool("verbose"),
		File:    v.ConfigFileUsed(),
	}, nil
}
