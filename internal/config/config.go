package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
	"github.com/hashicorp-forge/attachid/pkg/database"
)

// EnvConfigPath names the environment variable consulted when no -config
// flag is given.
const EnvConfigPath = "ATTACHID_CONFIG"

// Config is the attachid configuration.
type Config struct {
	// LogLevel is the hclog level name (trace, debug, info, warn, error).
	// Empty leaves the logger's level alone.
	LogLevel string `hcl:"log_level,optional" json:"log_level"`

	// DefaultDomain is used by commands that create IDs when no domain is
	// given.
	DefaultDomain string `hcl:"default_domain,optional" json:"default_domain"`

	// AllowedDomains restricts which domains are accepted when checking IDs.
	// Empty allows any domain.
	AllowedDomains []string `hcl:"allowed_domains,optional" json:"allowed_domains"`

	// RejectLegacy refuses domain-less IDs when checking.
	RejectLegacy bool `hcl:"reject_legacy,optional" json:"reject_legacy"`

	Database *Database `hcl:"database,block" json:"database"`
}

// Database configures the attachment reference index.
type Database struct {
	Driver   string `hcl:"driver,optional" json:"driver"`
	Host     string `hcl:"host,optional" json:"host"`
	Port     int    `hcl:"port,optional" json:"port"`
	User     string `hcl:"user,optional" json:"user"`
	Password string `hcl:"password,optional" json:"password"`
	DBName   string `hcl:"dbname,optional" json:"dbname"`
	SSLMode  string `hcl:"sslmode,optional" json:"sslmode"`
	Path     string `hcl:"path,optional" json:"path"`

	MaxIdleConns    int    `hcl:"max_idle_conns,optional" json:"max_idle_conns"`
	MaxOpenConns    int    `hcl:"max_open_conns,optional" json:"max_open_conns"`
	ConnMaxLifetime string `hcl:"conn_max_lifetime,optional" json:"conn_max_lifetime"`
	ConnectTimeout  string `hcl:"connect_timeout,optional" json:"connect_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Database: &Database{
			Driver: database.DriverSQLite,
			Path:   ".attachid/attachid.db",
		},
	}
}

// NewConfig parses an HCL configuration file. Unset values take their
// defaults.
func NewConfig(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	def := Default()
	if cfg.Database == nil {
		cfg.Database = def.Database
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = def.Database.Driver
	}
	if cfg.Database.Driver == database.DriverSQLite && cfg.Database.Path == "" {
		cfg.Database.Path = def.Database.Path
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Load reads the config at path, falling back to $ATTACHID_CONFIG and then
// to Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return NewConfig(path)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.By(validLogLevel)),
		validation.Field(&c.DefaultDomain, attachmentid.IsDomain),
		validation.Field(&c.AllowedDomains, validation.Each(attachmentid.IsDomain)),
		validation.Field(&c.Database),
	)
}

// Validate checks the database block.
func (d *Database) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Driver, validation.In(database.DriverPostgres, database.DriverSQLite)),
		validation.Field(&d.Path, validation.When(d.Driver == database.DriverSQLite, validation.Required)),
		validation.Field(&d.Host, validation.When(d.Driver == database.DriverPostgres, validation.Required)),
		validation.Field(&d.DBName, validation.When(d.Driver == database.DriverPostgres, validation.Required)),
		validation.Field(&d.ConnMaxLifetime, validation.By(validDuration)),
		validation.Field(&d.ConnectTimeout, validation.By(validDuration)),
	)
}

// PolicyRules returns the rules allowed_domains and reject_legacy impose on
// attachment IDs.
func (c *Config) PolicyRules() []validation.Rule {
	var rules []validation.Rule
	if c.RejectLegacy {
		rules = append(rules, attachmentid.NotLegacy)
	}
	if len(c.AllowedDomains) > 0 {
		domains := c.AllowedDomains
		if !c.RejectLegacy {
			domains = append(append([]string(nil), domains...), "")
		}
		rules = append(rules, attachmentid.InDomains(domains...))
	}
	return rules
}

// CheckID validates id against the configured policy.
func (c *Config) CheckID(id attachmentid.ID) error {
	return validation.Validate(id, c.PolicyRules()...)
}

// Level returns the configured log level, Info when unset.
func (c *Config) Level() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Info
	}
	return hclog.LevelFromString(c.LogLevel)
}

// DatabaseConfig converts the database block for pkg/database.
func (c *Config) DatabaseConfig() database.Config {
	d := c.Database
	if d == nil {
		d = Default().Database
	}

	port := d.Port
	if port == 0 && d.Driver == database.DriverPostgres {
		port = 5432
	}
	// Validate has already rejected unparsable durations.
	lifetime, _ := time.ParseDuration(d.ConnMaxLifetime)
	connectTimeout, _ := time.ParseDuration(d.ConnectTimeout)

	return database.Config{
		Driver:          d.Driver,
		Host:            d.Host,
		Port:            port,
		User:            d.User,
		Password:        d.Password,
		DBName:          d.DBName,
		SSLMode:         d.SSLMode,
		Path:            d.Path,
		MaxIdleConns:    d.MaxIdleConns,
		MaxOpenConns:    d.MaxOpenConns,
		ConnMaxLifetime: lifetime,
		ConnectTimeout:  connectTimeout,
	}
}

func validLogLevel(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if hclog.LevelFromString(s) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}

func validDuration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a duration such as \"5m\"")
	}
	return nil
}
