package wiz

import "github.com/dmitrymomot/wiz/pkg/config"

// Env maps environment variables onto a server configuration. Load it through
// FromEnv, or embed it in an application's own config struct.
type Env struct {
	Name         string `env:"WIZ_NAME" envDefault:"Wiz"`
	Host         string `env:"WIZ_HOST" envDefault:"localhost"`
	Port         int    `env:"WIZ_PORT" envDefault:"8080"`
	ServerHeader bool   `env:"WIZ_SERVER_HEADER" envDefault:"false"`
	Compress     bool   `env:"WIZ_COMPRESS" envDefault:"false"`
	StaticFiles  bool   `env:"WIZ_STATIC" envDefault:"false"`
	StaticIndex  bool   `env:"WIZ_STATIC_INDEX" envDefault:"false"`
	StaticRoot   string `env:"WIZ_STATIC_ROOT" envDefault:"public"`
	StaticPrefix string `env:"WIZ_STATIC_PREFIX" envDefault:"/"`
}

// Config applies the loaded values to the default configuration through the
// regular setter pipeline. Routes and status handlers are code, not
// environment, so the default route table is kept for the caller to replace.
func (e Env) Config() Config {
	return New().
		WithName(e.Name).
		WithHost(e.Host).
		WithPort(e.Port).
		WithServerHeader(e.ServerHeader).
		WithCompression(e.Compress).
		WithStaticFiles(e.StaticFiles).
		WithStaticIndex(e.StaticIndex).
		WithStaticRoot(e.StaticRoot).
		WithStaticPrefix(e.StaticPrefix)
}

// FromEnv loads WIZ_* environment variables (and a .env file when present)
// into a Config.
func FromEnv() (Config, error) {
	var e Env
	if err := config.Load(&e); err != nil {
		return Config{}, err
	}
	return e.Config(), nil
}
