package config

import "testing"

func TestParseFlags_Defaults(t *testing.T) {
	f, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	f.Apply(cfg)
	if f.ConfigPath != DefaultPath || *cfg != *DefaultConfig() {
		t.Fatalf("no flags should change nothing: flags=%+v cfg=%+v", f, cfg)
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	f, err := ParseFlags([]string{"--data", "/tmp/w.json", "--debug", "-c", "alt.yaml"})
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	f.Apply(cfg)
	if f.ConfigPath != "alt.yaml" || cfg.DataPath != "/tmp/w.json" || !cfg.Debug {
		t.Fatalf("overrides not applied: flags=%+v cfg=%+v", f, cfg)
	}
}

func TestParseFlags_DebugFalseOverridesFile(t *testing.T) {
	f, err := ParseFlags([]string{"--debug=false"})
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Debug = true
	f.Apply(cfg)
	if cfg.Debug {
		t.Fatalf("explicit --debug=false should win over the file")
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	if _, err := ParseFlags([]string{"--nope"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
