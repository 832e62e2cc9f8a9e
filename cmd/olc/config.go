package main

import (
	"strings"

	"github.com/spf13/viper"
)

// cliConfig holds the settings the command tree reads through viper: a
// default encode precision and an output format, each overridable by flag,
// environment variable (OLC_PRECISION, OLC_FORMAT), or config file.
type cliConfig struct {
	Precision int    `mapstructure:"precision"`
	Format    string `mapstructure:"format"`
}

func loadConfig() (*viper.Viper, *cliConfig, error) {
	v := viper.New()
	v.SetDefault("precision", 10)
	v.SetDefault("format", "plain")

	v.SetConfigName("olc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	_ = v.ReadInConfig() // absent config file is not an error

	v.SetEnvPrefix("OLC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &cliConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}
