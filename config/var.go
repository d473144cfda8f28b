package config

var (
	cfg *Config
)

func init() {
	cfg = &Config{}
	cfg.fix()
}

func Get() *Config {
	return cfg
}

var (
	Version = "1"
)

const (
	AppName = "gosema"
)
