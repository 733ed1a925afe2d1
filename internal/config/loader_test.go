package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"moduled/pkg/types"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\ninitial_module: another\nlog_level: debug\nmax_body_bytes: 2048\ncors_enabled: true\ncors_origins: [\"*\"]\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.InitialModule != types.ModuleAnother || cfg.LogLevel != "debug" || cfg.MaxBodyBytes != 2048 || !cfg.CORSEnabled || len(cfg.CORSOrigins) != 1 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","initial_module":"42","log_format":"json"}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.InitialModule != types.ModuleFortyTwo || cfg.LogFormat != "json" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoad_NumericModuleAcrossFormats(t *testing.T) {
	d := t.TempDir()
	files := map[string]string{
		"num.json": `{"initial_module":42}`,
		"str.json": `{"initial_module":"42"}`,
		"num.yaml": "initial_module: 42\n",
		"num.toml": "initial_module=\"42\"\n",
	}
	for name, content := range files {
		cfg, err := Load(writeTempFile(t, d, name, content))
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if cfg.InitialModule != types.ModuleFortyTwo {
			t.Fatalf("%s: initial_module=%v", name, cfg.InitialModule)
		}
	}
}

func TestLoadJSON_ErrorPrefix(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.json", `{"addr":`)
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if strings.Contains(err.Error(), "json: json:") || !strings.HasPrefix(err.Error(), "decode json:") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\ninitial_module=\"forty_two\"\nlog_level=\"error\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.InitialModule != types.ModuleFortyTwo || cfg.LogLevel != "error" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_InvalidContent(t *testing.T) {
	d := t.TempDir()
	cases := map[string]string{
		"bad.yaml":    "addr: :8080\n: broken\n",
		"bad.json":    `{ "addr": ":8080", "initial_module": }`,
		"bad.toml":    "addr=:8080\ninitial_module\n",
		"module.yaml": "initial_module: three\n",
	}
	for name, content := range cases {
		p := writeTempFile(t, d, name, content)
		if _, err := Load(p); err == nil {
			t.Fatalf("%s: expected unmarshal error", name)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.Addr != DefaultAddr || cfg.InitialModule != types.ModuleOne || cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat || cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	kept := Config{Addr: ":1", InitialModule: types.ModuleAnother, MaxBodyBytes: 5}.WithDefaults()
	if kept.Addr != ":1" || kept.InitialModule != types.ModuleAnother || kept.MaxBodyBytes != 5 {
		t.Fatalf("explicit values overwritten: %+v", kept)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MODULED_ADDR", ":6060")
	t.Setenv("MODULED_INITIAL_MODULE", "another")
	t.Setenv("MODULED_CORS_ORIGINS", "http://a,http://b")
	cfg := Config{Addr: ":1", LogLevel: "debug"}
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Addr != ":6060" || cfg.InitialModule != types.ModuleAnother || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestApplyEnv_InvalidModule(t *testing.T) {
	t.Setenv("MODULED_INITIAL_MODULE", "nope")
	var cfg Config
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected env parse error")
	}
}

func TestResolve(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "moduled.yaml", "addr: :5555\n")
	missing := filepath.Join(d, "missing.yaml")

	cfg, err := Resolve("", missing, p)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Addr != ":5555" || cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}

	cfg, err = Resolve("", missing)
	if err != nil {
		t.Fatalf("resolve without files: %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	if _, err := Resolve(missing); err == nil {
		t.Fatalf("expected error for explicit missing path")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome("~"); err != nil || got != home {
		t.Fatalf("got %q err=%v", got, err)
	}
	want := filepath.Join(home, ".config", "moduled.yaml")
	if got, err := ExpandHome("~/.config/moduled.yaml"); err != nil || got != want {
		t.Fatalf("got %q want %q err=%v", got, want, err)
	}
}
