package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TOOLKIT_SERVER_PORT.
const EnvPrefix = "TOOLKIT"

// Config defines server configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	DB     DBConfig     `mapstructure:"db" yaml:"db"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CORS   CORSConfig   `mapstructure:"cors" yaml:"cors"`
	Static StaticConfig `mapstructure:"static" yaml:"static"`
	MCP    MCPConfig    `mapstructure:"mcp" yaml:"mcp"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

type DBConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// Path sends logs to a size-capped file instead of stdout.
	Path string `mapstructure:"path" yaml:"path"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

type MCPConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
		DB: DBConfig{
			Path: "toolkit.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{},
		},
		MCP: MCPConfig{
			Enabled: true,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, an
// optional .env file and TOOLKIT_* environment variables, in increasing
// precedence. An empty path falls back to TOOLKIT_CONFIG_PATH.
func Load(path string) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG_PATH")
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("db.path", d.DB.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("cors.allowed_origins", d.CORS.AllowedOrigins)
	v.SetDefault("static.dir", d.Static.Dir)
	v.SetDefault("mcp.enabled", d.MCP.Enabled)
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.DB.Path == "" {
		return errors.New("db.path is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}

// YAML renders the configuration as a YAML document.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
