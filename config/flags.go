package config

import (
	"github.com/spf13/pflag"
)

// Flags are the command-line overrides. Zero values mean "not given".
type Flags struct {
	ConfigPath string
	DataPath   string
	Debug      bool
	debugSet   bool
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := pflag.NewFlagSet("time-waster", pflag.ContinueOnError)
	fs.StringVarP(&f.ConfigPath, "config", "c", DefaultPath, "path to the YAML config file")
	fs.StringVarP(&f.DataPath, "data", "d", "", "path to the waste data file (overrides config)")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging and periodic stats")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.debugSet = fs.Changed("debug")
	return f, nil
}

// Apply copies the given flags over cfg and re-validates it.
func (f *Flags) Apply(cfg *Config) {
	if f == nil || cfg == nil {
		return
	}
	if f.DataPath != "" {
		cfg.DataPath = f.DataPath
	}
	if f.debugSet {
		cfg.Debug = f.Debug
	}
	_ = cfg.Validate()
}
