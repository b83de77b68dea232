package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"word-mcp-launcher/core/launcher"
	"word-mcp-launcher/core/logger"
	"word-mcp-launcher/core/server"
	"word-mcp-launcher/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the launcher.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds the listen settings passed to the MCP server.
	Server server.Config `mapstructure:"server"`
	// Launch holds the executable and supervision settings.
	Launch launcher.Config `mapstructure:"launch"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds the object storage checked before launch.
	Storage storage.Config `mapstructure:"storage"`
	// Probe holds the readiness probe settings.
	Probe server.ProbeConfig `mapstructure:"probe"`
}

// LoadConfig loads configuration from environment variables and an optional
// .env file in path.
func LoadConfig(path string) (*Config, error) {
	loadDotEnv(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values and env aliases
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LAUNCH_MODE -> launch.mode)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// platformOwned variables are only ever taken from the real environment.
var platformOwned = map[string]bool{"PORT": true}

// loadDotEnv fills unset variables from the .env file at path. Unlike
// godotenv.Overload it never replaces a value that is already set, and it
// skips platformOwned names entirely.
func loadDotEnv(path string) {
	values, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for key, val := range values {
		if platformOwned[key] {
			continue
		}
		if _, set := os.LookupEnv(key); !set {
			_ = os.Setenv(key, val)
		}
	}
}

// bindValues uses reflection to iterate over the struct and register every
// key in Viper based on the 'default' and 'mapstructure' tags. A field with
// an 'env' tag is read only from the listed variables, first non-empty wins,
// and otherwise keeps its default; AutomaticEnv never sees it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))

		if names := field.Tag.Get("env"); names != "" {
			// Set outranks the environment lookup of AutomaticEnv.
			v.Set(key, firstEnv(strings.Split(names, ","), field.Tag.Get("default")))
		}
	}
}

func firstEnv(names []string, fallback string) string {
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			return val
		}
	}
	return fallback
}
