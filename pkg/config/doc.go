// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Structs declare their variables with `env` tags (see
// github.com/caarlos0/env); Load parses them once per type and caches the
// result so every part of the application sees a consistent view:
//
//	var e wiz.Env
//	config.MustLoad(&e)
//	cfg := e.Config()
//
// Errors are reported through the ErrParsingConfig and ErrNilPointer
// sentinels and can be inspected with errors.Is.
package config
