package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/kbukum/streamkit/errors"
)

type testDemo struct {
	Engine string `yaml:"engine" mapstructure:"engine"`
	From   int    `yaml:"from" mapstructure:"from"`
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Demo          testDemo `yaml:"demo" mapstructure:"demo"`
}

const testYAML = `
base:
  name: streamdemo
  environment: staging
  version: "1.0.0"
logging:
  level: warn
  no_color: true
demo:
  engine: pull
  from: 3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestBaseConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := BaseConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := BaseConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})
}

func TestBaseConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BaseConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", BaseConfig{Name: "svc", Environment: "development"}, false, ""},
		{"valid production", BaseConfig{Name: "svc", Environment: "production"}, false, ""},
		{"missing name", BaseConfig{Environment: "production"}, true, "base.name is required"},
		{"invalid environment", BaseConfig{Name: "svc", Environment: "invalid"}, true, "base.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !tc.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
			}
			if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestServiceConfigDefaults(t *testing.T) {
	cfg := ServiceConfig{Base: BaseConfig{Name: "svc"}}
	cfg.ApplyDefaults()
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level in development, got %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	prod := ServiceConfig{Base: BaseConfig{Name: "svc", Environment: "production"}}
	prod.ApplyDefaults()
	if prod.Logging.Level != "info" {
		t.Errorf("expected info level in production, got %q", prod.Logging.Level)
	}
}

func TestServiceConfigValidate_Logging(t *testing.T) {
	cfg := ServiceConfig{Base: BaseConfig{Name: "svc"}}
	cfg.ApplyDefaults()
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	if err == nil || !strings.HasPrefix(err.Error(), "logging:") {
		t.Errorf("expected a logging error, got %v", err)
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", testYAML)

	var cfg testConfig
	if err := LoadConfig("streamdemo", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Base.Name != "streamdemo" {
		t.Errorf("expected name 'streamdemo', got %q", cfg.Base.Name)
	}
	if cfg.Base.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Base.Environment)
	}
	if cfg.Logging.Level != "warn" || !cfg.Logging.NoColor {
		t.Errorf("got logging %+v, want level warn and no_color", cfg.Logging)
	}
	if cfg.Demo.Engine != "pull" || cfg.Demo.From != 3 {
		t.Errorf("got demo %+v, want engine pull and from 3", cfg.Demo)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "base: [unclosed")

	var cfg testConfig
	if err := LoadConfig("streamdemo", &cfg, WithConfigFile(path)); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", testYAML)
	t.Setenv("SKTEST_DEMO_ENGINE", "push")
	t.Setenv("SKTEST_LOGGING_LEVEL", "error")
	t.Setenv("DEMO_FROM", "99")

	var cfg testConfig
	if err := LoadConfig("streamdemo", &cfg, WithConfigFile(path), WithEnvPrefix("SKTEST")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Demo.Engine != "push" {
		t.Errorf("expected env to override engine, got %q", cfg.Demo.Engine)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected env to override logging level, got %q", cfg.Logging.Level)
	}
	if cfg.Demo.From != 3 {
		t.Errorf("expected unprefixed variable to be ignored, got from=%d", cfg.Demo.From)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yml", testYAML)
	envPath := writeFile(t, dir, ".env", "SKENVFILE_DEMO_ENGINE=staged\n")
	t.Cleanup(func() { os.Unsetenv("SKENVFILE_DEMO_ENGINE") })

	var cfg testConfig
	err := LoadConfig("streamdemo", &cfg,
		WithConfigFile(cfgPath), WithEnvFile(envPath), WithEnvPrefix("SKENVFILE"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Demo.Engine != "staged" {
		t.Errorf("expected .env value, got %q", cfg.Demo.Engine)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", testYAML)
	t.Setenv("SKFLAG_DEMO_ENGINE", "push")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("engine", "all", "")
	fs.Int("from", 1, "")
	if err := fs.Parse([]string{"--engine", "staged"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	var cfg testConfig
	err := LoadConfig("streamdemo", &cfg,
		WithConfigFile(path),
		WithEnvPrefix("SKFLAG"),
		WithFlags(map[string]*pflag.Flag{
			"demo.engine": fs.Lookup("engine"),
			"demo.from":   fs.Lookup("from"),
		}),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Demo.Engine != "staged" {
		t.Errorf("expected the set flag to win, got %q", cfg.Demo.Engine)
	}
	if cfg.Demo.From != 3 {
		t.Errorf("expected an unset flag not to override the file, got %d", cfg.Demo.From)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/streamdemo/config.yml": true,
		"./.env":                      true,
	}}
	resolver := &Resolver{FileSystem: fs}

	files := resolver.ResolveFiles("streamdemo", LoaderConfig{})
	if files.ConfigFile != "./cmd/streamdemo/config.yml" {
		t.Errorf("expected config file at ./cmd/streamdemo/config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected env file at ./.env, got %q", files.EnvFile)
	}

	explicit := resolver.ResolveFiles("streamdemo", LoaderConfig{ConfigFile: "x.yml", EnvFile: "y.env"})
	if explicit.ConfigFile != "x.yml" || explicit.EnvFile != "y.env" {
		t.Errorf("expected explicit paths to win, got %+v", explicit)
	}
}

func TestResolverPrefersAppEnvFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./.env":            true,
		"./.env.streamdemo": true,
	}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("streamdemo", LoaderConfig{})
	if files.EnvFile != "./.env.streamdemo" {
		t.Errorf("got %q, want ./.env.streamdemo", files.EnvFile)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"DEBUG", []string{"debug"}},
		{"DEMO_ENGINE", []string{"demo_engine", "demo.engine"}},
		{"LOGGING_NO_COLOR", []string{"logging_no_color", "logging.no.color", "logging.no_color", "logging_no.color"}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := envKeyVariants(tc.in)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("streamdemo_")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
	if lc.EnvPrefix != "STREAMDEMO" {
		t.Errorf("expected normalized prefix, got %q", lc.EnvPrefix)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }
