package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"vendors/internal/config"
	"vendors/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "scenario.yml", cfg.Scenario.Path)
	require.Equal(t, config.FormatText, cfg.Report.Format)
	require.Empty(t, cfg.Report.MetricsFile)
	require.Equal(t, 4, cfg.Report.Concurrency)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: production
scenario:
  path: /etc/vendors/argentina.yml
report:
  format: json
  metricsFile: /var/lib/node_exporter/vendors.prom
  concurrency: 8
`))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "/etc/vendors/argentina.yml", cfg.Scenario.Path)
	require.Equal(t, config.FormatJSON, cfg.Report.Format)
	require.Equal(t, "/var/lib/node_exporter/vendors.prom", cfg.Report.MetricsFile)
	require.Equal(t, 8, cfg.Report.Concurrency)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("REPORT_FORMAT", "json")
	t.Setenv("SCENARIO_PATH", "other.json")

	cfg, err := config.Load(writeConfig(t, "report:\n  format: text\n"))
	require.NoError(t, err)

	require.Equal(t, config.FormatJSON, cfg.Report.Format)
	require.Equal(t, "other.json", cfg.Scenario.Path)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeConfig(t, "report:\n  format: xml\n"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = config.Load(writeConfig(t, "report:\n  concurrency: -1\n"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
