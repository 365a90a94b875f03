package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	ChatReplyDelay  time.Duration `mapstructure:"CHAT_REPLY_DELAY"`
	SeedSamplePosts bool          `mapstructure:"SEED_SAMPLE_POSTS"`
}

// Load reads the environment over the defaults. A value that cannot be
// decoded, such as CHAT_REPLY_DELAY=abc, is reported as an error.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_PORT", ":8080")
	v.SetDefault("CHAT_REPLY_DELAY", "500ms")
	v.SetDefault("SEED_SAMPLE_POSTS", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
