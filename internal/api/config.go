package api

import "time"

type Config struct {
	Proxy struct {
		Header  string   `yaml:"header"`
		Trusted []string `yaml:"trusted"`
	} `yaml:"proxy"`

	HTTP struct {
		Addr         string        `yaml:"addr" validate:"required"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		IdleTimeout  time.Duration `yaml:"idleTimeout"`
	} `yaml:"http"`

	// Auth names the headers the fronting auth proxy puts the caller identity in.
	Auth struct {
		IDHeader    string `yaml:"idHeader"`
		EmailHeader string `yaml:"emailHeader"`
	} `yaml:"auth"`
}

const (
	defaultIDHeader    = "X-User-Id"
	defaultEmailHeader = "X-User-Email"
)
