package config

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  seq_url: "http://seq:5341"
data:
  file: "/tmp/data.yaml"
merge:
  prefix_a: "P_"
  columns_a: [4, 3, 2, 1, 0]
display:
  style: rounded
`)

	cfg, err := Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.Logging.Level, "debug")
	assert.Equal(t, cfg.Logging.Format, "text")
	assert.Equal(t, cfg.Logging.SeqURL, "http://seq:5341")
	assert.Equal(t, cfg.Data.File, "/tmp/data.yaml")
	assert.Equal(t, cfg.Merge.PrefixA, "P_")
	assert.Equal(t, cfg.Merge.PrefixB, "CustomerTransactions_")
	assert.DeepEqual(t, cfg.Merge.ColumnsA, []int{4, 3, 2, 1, 0})
	assert.DeepEqual(t, cfg.Merge.ColumnsB, []int{0, 1, 2, 3, 4})
	assert.Equal(t, cfg.Display.Style, "rounded")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "logging: [unclosed"))
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MINITABLES_LOG_LEVEL", "warn")
	t.Setenv("MINITABLES_DATA_FILE", "/data/override.yaml")

	cfg, err := Load(writeConfig(t, "logging:\n  level: debug\n"))
	assert.NilError(t, err)

	assert.Equal(t, cfg.Logging.Level, "warn")
	assert.Equal(t, cfg.Data.File, "/data/override.yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"no data file", func(c *Config) { c.Data.File = "" }, "data.file"},
		{"no merge table", func(c *Config) { c.Merge.TableB = "" }, "merge.table_a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NilError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
