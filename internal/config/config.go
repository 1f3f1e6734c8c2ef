package config

import "github.com/spf13/viper"

// Config carries everything the process reads from the environment.
type Config struct {
	ListenAddr  string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development. DATABASE_URL has no default;
// startup fails without it.
func Load() Config {
	v := viper.New()
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_SECRET", "super-secret-key")
	v.AutomaticEnv()

	return Config{
		ListenAddr:  v.GetString("LISTEN_ADDR"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		JWTSecret:   v.GetString("JWT_SECRET"),
	}
}
