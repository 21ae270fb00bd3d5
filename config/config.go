package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Config = viper.New()

// SetupConfig sets defaults, reads the optional config file and wires
// environment overrides. The config file is optional; environment variables
// always win.
func SetupConfig() {
	Config.SetDefault("port", "8080")
	Config.SetDefault("mode", "serve")
	Config.SetDefault("data_file", "records.json")
	Config.SetDefault("log_level", "info")
	Config.SetDefault("cors_origins", "*")

	Config.SetConfigName("frontdesk")
	Config.AddConfigPath("./")
	Config.AddConfigPath("./config")
	Config.AddConfigPath("/etc/frontdesk")

	if err := Config.ReadInConfig(); err != nil {
		Logger.Debug().Msgf("no config file loaded: %v", err)
	}

	Config.AutomaticEnv()

	Config.WatchConfig()
	Config.OnConfigChange(func(e fsnotify.Event) {
		Logger.Info().Msgf("config file changed: %v", e.Name)
		LogInit(Config.GetString("log_level"))
	})
}

// CorsOrigins splits the configured origin list, falling back to the
// wildcard when nothing usable is set.
func CorsOrigins() []string {
	raw := strings.TrimSpace(Config.GetString("cors_origins"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
