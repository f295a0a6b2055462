package config

import "time"

// Defaults seeds CLI and HTTP render options. Command-line options win.
type Defaults struct {
	Output   string  `env:"NUMBERLINE_OUTPUT" envDefault:"Text"`
	Simplify bool    `env:"NUMBERLINE_SIMPLIFY" envDefault:"true"`
	Width    float64 `env:"NUMBERLINE_WIDTH" envDefault:"800"`
	Height   float64 `env:"NUMBERLINE_HEIGHT" envDefault:"400"`
}

// Server configures the serve command.
type Server struct {
	Addr              string        `env:"NUMBERLINE_ADDR" envDefault:"127.0.0.1:8080"`
	ReadHeaderTimeout time.Duration `env:"NUMBERLINE_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"NUMBERLINE_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func LoadDefaults() (Defaults, error) {
	var cfg Defaults
	if err := ParseEnv(&cfg); err != nil {
		return Defaults{}, err
	}
	return cfg, nil
}

func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}
