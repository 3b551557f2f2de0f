package prettyregex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prx.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
throw_on_error: false
match_timeout: 250ms
cache_size: 16
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig()
	want.ThrowOnError = false
	want.MatchTimeout = 250 * time.Millisecond
	want.CacheSize = 16
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("LoadConfig (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "cache_size: 16\nlog_warnings: true\n")
	t.Setenv(EnvCacheSize, "32")
	t.Setenv(EnvLogWarnings, "false")
	t.Setenv(EnvMatchTimeout, " 2s ")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CacheSize != 32 || cfg.LogWarnings || cfg.MatchTimeout != 2*time.Second {
		t.Fatalf("LoadConfig = %+v", cfg)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), *cfg); diff != "" {
		t.Fatalf("LoadConfig (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		env     map[string]string
		msg     string
	}{
		{
			name:    "negative cache",
			content: "cache_size: -1\n",
			msg:     "cache_size must not be negative",
		},
		{
			name:    "zero length",
			content: "max_pattern_length: 0\n",
			msg:     "max_pattern_length must be positive",
		},
		{
			name:    "bad yaml",
			content: "cache_size: [\n",
			msg:     "failed to parse configuration file",
		},
		{
			name:    "bad env",
			content: "",
			env:     map[string]string{EnvMaxPatternLength: "abc"},
			msg:     "invalid environment override",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("LoadConfig succeeded")
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("err = %q, want it to mention %q", err, tc.msg)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig of a missing file succeeded")
	}
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]any{
		"throwOnError":  "false",
		"cache-size":    float64(8),
		"match_timeout": "1s",
		"unrelated":     true,
	})
	if err != nil {
		t.Fatalf("ConfigFromMap: %v", err)
	}

	want := DefaultConfig()
	want.ThrowOnError = false
	want.CacheSize = 8
	want.MatchTimeout = time.Second
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("ConfigFromMap (-want +got):\n%s", diff)
	}

	if _, err := ConfigFromMap(map[string]any{"cache_size": -4}); err == nil {
		t.Fatal("ConfigFromMap accepted a negative cache size")
	}
	if _, err := ConfigFromMap(map[string]any{"log_warnings": "perhaps"}); err == nil {
		t.Fatal("ConfigFromMap accepted a non-boolean")
	}
	if _, err := ConfigFromMap(map[string]any{"cache_size": 1, "cacheSize": 2}); err == nil {
		t.Fatal("ConfigFromMap accepted two spellings of cache_size")
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThrowOnError = false
	cfg.LogWarnings = false

	m, err := New(cfg.Options()...).Compile("digit}")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !m.MatchString("7}") {
		t.Fatalf("%q should match \"7}\"", m)
	}
}
