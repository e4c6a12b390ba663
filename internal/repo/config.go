package repo

import (
	"time"
)

type Backend string

const (
	BackendMongo  Backend = "mongo"
	BackendMemory Backend = "memory"
)

type Config struct {
	Backend Backend     `yaml:"backend" validate:"required,oneof=mongo memory"`
	Mongo   MongoConfig `yaml:"mongo"`
}

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`

	Collections struct {
		Availability string `yaml:"availability"`
		Interviews   string `yaml:"interviews"`
		Persons      string `yaml:"persons"`
	} `yaml:"collections"`
}
