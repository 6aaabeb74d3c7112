package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvRelease = "release"

	HandshakeOK      = "ok"
	HandshakeOptions = "options"

	// DevToken is accepted only when AppEnv is dev.
	DevToken = "mytoken"
)

var (
	ErrReadConfig   = errors.New("config read failed")
	ErrInvalidValue = errors.New("invalid config value")
	ErrInsecure     = errors.New("insecure config")
)

type Config struct {
	AppEnv   string `mapstructure:"app_env"`
	HTTPAddr string `mapstructure:"http_addr"`
	LogLevel string `mapstructure:"log_level"`

	DBHost         string `mapstructure:"db_host"`
	DBPort         int    `mapstructure:"db_port"`
	DBName         string `mapstructure:"db_name"`
	DBUser         string `mapstructure:"db_user"`
	DBPass         string `mapstructure:"db_pass"`
	DBSSLMode      string `mapstructure:"db_sslmode"`
	MigrationsPath string `mapstructure:"migrations_path"`

	ZKToken string `mapstructure:"zk_token"`

	Handshake Handshake `mapstructure:",squash"`

	// DiscoveryUntil enables the catch-all POST route until the given instant
	// (RFC 3339). Parsed by Validate.
	DiscoveryUntilRaw string    `mapstructure:"discovery_until"`
	DiscoveryUntil    time.Time `mapstructure:"-"`

	KafkaBrokers   string        `mapstructure:"kafka_brokers"`
	KafkaTopic     string        `mapstructure:"kafka_topic"`
	RelayBatchSize int           `mapstructure:"relay_batch_size"`
	RelayInterval  time.Duration `mapstructure:"relay_interval"`
}

// Handshake holds the options block returned to terminals on GET /iclock/cdata.
type Handshake struct {
	Mode          string `mapstructure:"handshake_mode"`
	RegistryCode  string `mapstructure:"handshake_registry_code"`
	PushVersion   string `mapstructure:"handshake_push_version"`
	Delay         int    `mapstructure:"handshake_delay"`
	ErrorDelay    int    `mapstructure:"handshake_error_delay"`
	TransFlag     string `mapstructure:"handshake_trans_flag"`
	TransInterval int    `mapstructure:"handshake_trans_interval"`
	TimeZone      int    `mapstructure:"handshake_timezone"`
}

var defaults = map[string]any{
	"app_env":                  EnvRelease,
	"http_addr":                ":8080",
	"log_level":                "info",
	"db_host":                  "localhost",
	"db_port":                  5432,
	"db_name":                  "",
	"db_user":                  "",
	"db_pass":                  "",
	"db_sslmode":               "disable",
	"migrations_path":          "internal/db/migrations",
	"zk_token":                 "",
	"handshake_mode":           HandshakeOptions,
	"handshake_registry_code":  "",
	"handshake_push_version":   "2.4.1",
	"handshake_delay":          10,
	"handshake_error_delay":    30,
	"handshake_trans_flag":     "TransData AttLog OpLog",
	"handshake_trans_interval": 1,
	"handshake_timezone":       0,
	"discovery_until":          "",
	"kafka_brokers":            "",
	"kafka_topic":              "attendance-events",
	"relay_batch_size":         100,
	"relay_interval":           "5s",
}

// Load reads configuration from the environment and, when path is non-empty,
// from a YAML file. Environment values win over the file.
func Load(path string) (*Config, error) {
	const fn = "Config:Load"
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s:%w:%w", fn, ErrReadConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrReadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.AppEnv == EnvDev && cfg.ZKToken == "" {
		cfg.ZKToken = DevToken
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	const fn = "Config:Validate"
	switch c.AppEnv {
	case EnvDev, EnvRelease:
	default:
		return fmt.Errorf("%s:%w: app_env must be %q or %q, got %q", fn, ErrInvalidValue, EnvDev, EnvRelease, c.AppEnv)
	}
	switch c.Handshake.Mode {
	case HandshakeOK, HandshakeOptions:
	default:
		return fmt.Errorf("%s:%w: handshake_mode must be %q or %q, got %q", fn, ErrInvalidValue, HandshakeOK, HandshakeOptions, c.Handshake.Mode)
	}
	if c.DBName == "" || c.DBUser == "" {
		return fmt.Errorf("%s:%w: db_name and db_user are required", fn, ErrInvalidValue)
	}
	if c.AppEnv != EnvDev && (c.ZKToken == "" || c.ZKToken == DevToken) {
		return fmt.Errorf("%s:%w: zk_token must be set to a non-default secret outside dev", fn, ErrInsecure)
	}
	if raw := strings.TrimSpace(c.DiscoveryUntilRaw); raw != "" {
		until, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("%s:%w: discovery_until: %w", fn, ErrInvalidValue, err)
		}
		c.DiscoveryUntil = until
	}
	if c.KafkaBrokers != "" && (c.RelayBatchSize <= 0 || c.RelayInterval <= 0) {
		return fmt.Errorf("%s:%w: relay_batch_size and relay_interval must be positive", fn, ErrInvalidValue)
	}
	return nil
}

// ConnString renders the postgres URL used by both pgx and the migrator.
func (c *Config) ConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) DiscoveryActive(now time.Time) bool {
	return !c.DiscoveryUntil.IsZero() && now.Before(c.DiscoveryUntil)
}

func (c *Config) RelayEnabled() bool {
	return strings.TrimSpace(c.KafkaBrokers) != ""
}

func (c *Config) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
