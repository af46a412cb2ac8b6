// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the tree that `loader.go` builds from
// `conf/.env`, `conf/global.yaml`, and `BADNEWS_`-prefixed environment
// overrides.  Zero values for optional tunables are replaced by the
// defaults in applyDefaults before validation runs.
//
// Notes
// -----
//   - Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   - Durations are written as Go duration strings ("15s", "30m").
//   - The `Paths` block is filled at runtime; YAML must not try to set it.

package config

import (
	"fmt"
	"strings"
	"time"
)

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr      string        `koanf:"listen_addr"      validate:"required,hostname_port"`
	ForceHTTPS      bool          `koanf:"force_https"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"gte=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"gte=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gte=0"`
}

//
// Database section
//

// Database selects the driver and holds the DSN template.
//
// When DSN contains a `%s` verb the password is substituted at runtime.
// Password is either a literal or a Vault reference of the form
// `vault:<mount>/<path>#<key>`, resolved by cmd/web before DSN().
type Database struct {
	Driver          string        `koanf:"driver"            validate:"required,oneof=mysql pgx sqlite"`
	DSN             string        `koanf:"dsn"               validate:"required,dsn_verbs"`
	Password        string        `koanf:"password"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
}

// BuildDSN returns the connection string with password filled in.
func (d Database) BuildDSN(password string) string {
	if strings.Contains(d.DSN, "%s") {
		return fmt.Sprintf(d.DSN, password)
	}
	return d.DSN
}

//
// Seed, log, metrics, and theme sections
//

// Seed controls the startup population of an empty table.
type Seed struct {
	Quantity int `koanf:"quantity" validate:"gte=0"`
}

// Log controls the zap logger.  Dir is relative to Paths.Root.
type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	Dir   string `koanf:"dir"`
}

// Metrics holds the value of the `umgebung` const label.
type Metrics struct {
	Environment string `koanf:"environment"`
}

// Theme selects the on-disk template overrides.  Dir is relative to
// Paths.Root; a missing directory means embedded templates only.
type Theme struct {
	Dir  string `koanf:"dir"`
	Name string `koanf:"name"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // BADNEWS_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Seed     Seed     `koanf:"seed"`
	Log      Log      `koanf:"log"`
	Metrics  Metrics  `koanf:"metrics"`
	Theme    Theme    `koanf:"theme"`
	Paths    Paths    `koanf:"-"`
}

// applyDefaults fills optional zero values.
func applyDefaults(c *Config) {
	setDur := func(d *time.Duration, v time.Duration) {
		if *d == 0 {
			*d = v
		}
	}
	setDur(&c.HTTP.ReadTimeout, 10*time.Second)
	setDur(&c.HTTP.WriteTimeout, 15*time.Second)
	setDur(&c.HTTP.IdleTimeout, 60*time.Second)
	setDur(&c.HTTP.ShutdownTimeout, 10*time.Second)
	setDur(&c.Database.ConnMaxLifetime, 30*time.Minute)

	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 15
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Seed.Quantity == 0 {
		c.Seed.Quantity = 5_000
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Metrics.Environment == "" {
		c.Metrics.Environment = "development"
	}
	if c.Theme.Dir == "" {
		c.Theme.Dir = "themes"
	}
	if c.Theme.Name == "" {
		c.Theme.Name = "default"
	}
}
