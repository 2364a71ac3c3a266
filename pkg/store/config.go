package store

import (
	"log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig discovers the store location: a .pestle config file in the
// working directory, PESTLE_PATH in the environment, or ~/.pestle.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pestle.db")
	viper.SetConfigName(".pestle") // .yaml is implicit
	viper.SetEnvPrefix("PESTLE")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
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
