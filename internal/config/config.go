package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort string        `mapstructure:"SERVER_PORT"`
	DNSServer  string        `mapstructure:"DNS_SERVER"`
	DNSTimeout time.Duration `mapstructure:"DNS_TIMEOUT"`
	Silent     bool          `mapstructure:"SILENT"`
}

func Load() (*Config, error) {
	viper.SetDefault("SERVER_PORT", ":8080")
	// Empty means: take the first nameserver from resolv.conf.
	viper.SetDefault("DNS_SERVER", "")
	viper.SetDefault("DNS_TIMEOUT", 5*time.Second)
	viper.SetDefault("SILENT", false)

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
