package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DASHDO_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		Home:        os.Getenv("DASHDO_HOME"),
		Extension:   ".todo",
		DefaultList: "inbox",
		Cache:       CacheConfig{Size: 64, TTL: 5 * time.Minute},
		Logger:      LoggerConfig{Level: "warn", Encoding: "console"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := strings.TrimLeft(`
extension: .dash
default_list: work
cache:
  size: 8
  ttl: 30s
logger:
  level: debug
  encoding: json
`, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("DASHDO_DEFAULT_LIST", "errands")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extension != ".dash" {
		t.Fatalf("Extension = %q, want .dash", cfg.Extension)
	}
	if cfg.DefaultList != "errands" {
		t.Fatalf("DefaultList = %q, want errands (env wins)", cfg.DefaultList)
	}
	if cfg.Cache.Size != 8 || cfg.Cache.TTL != 30*time.Second {
		t.Fatalf("Cache = %+v, want {8 30s}", cfg.Cache)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Encoding != "json" {
		t.Fatalf("Logger = %+v", cfg.Logger)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("Load expected error for missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Extension:   ".todo",
		DefaultList: "inbox",
		Cache:       CacheConfig{Size: 1},
		Logger:      LoggerConfig{Level: "info", Encoding: "console"},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate(base) = %v", err)
	}

	cases := map[string]func(c *Config){
		"extension without dot": func(c *Config) { c.Extension = "todo" },
		"bare dot":              func(c *Config) { c.Extension = "." },
		"empty default list":    func(c *Config) { c.DefaultList = " " },
		"negative cache":        func(c *Config) { c.Cache.Size = -1 },
		"negative ttl":          func(c *Config) { c.Cache.TTL = -time.Second },
		"unknown level":         func(c *Config) { c.Logger.Level = "loud" },
		"unknown encoding":      func(c *Config) { c.Logger.Encoding = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
		})
	}

	uncached := base
	uncached.Cache.Size = 0
	if err := uncached.Validate(); err != nil {
		t.Fatalf("Validate() with cache.size 0 = %v, want nil", err)
	}
}
