package remote

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the local store path and the persisted theme preference.
type Config interface {
	BasePath() string
	Theme() string
	SaveTheme(name string) error
}

// LoadConfig reads the .keep config file, falling back to defaults when no
// file exists. The theme preference lives in the same file.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.keep.db")
	viper.SetDefault("theme", "light")
	viper.SetConfigName(".keep") // .yaml is implicit
	viper.SetEnvPrefix("KEEP")
	viper.AutomaticEnv()

	if override := os.Getenv("KEEP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, ThemeName: viper.GetString("theme")}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	ThemeName string `json:"theme"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Theme() string {
	return f.ThemeName
}

// SaveTheme writes the theme preference back to the config file.
func (f *fileConfig) SaveTheme(name string) error {
	viper.Set("theme", name)
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		home, herr := homedir.Dir()
		if herr != nil {
			return herr
		}
		if werr := viper.WriteConfigAs(home + "/.keep.yaml"); werr != nil {
			return werr
		}
	}
	f.ThemeName = name
	return nil
}
