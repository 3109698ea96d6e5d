package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the data directory holding the todo and archive files.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data directory from a .ldr config file or LDR_*
// environment variables, defaulting to ~/.ldr.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.ldr")
	viper.SetConfigName(".ldr") // .yaml is implicit
	viper.SetEnvPrefix("LDR")
	viper.AutomaticEnv()

	if override := os.Getenv("LDR_CONFIG_PATH"); override != "" {
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

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
