package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: everything else falls back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "https://restcountries.com/v3.1", conf.CountriesAPI.BaseURL)
		assert.Equal(t, 5*time.Second, conf.CountriesAPI.Timeout)
		assert.Equal(t, 24*time.Hour, conf.Quiz.HintCacheTTL)

		catalog, err := conf.GetCatalog()
		require.NoError(t, err)
		assert.Equal(t, []string{"Canada", "USA", "France", "China"}, catalog.Names())
	})

	t.Run("Reads a custom catalog", func(t *testing.T) {
		path := writeConfig(t, `
catalog:
  - name: Japan
    mesh: Plane12_Material003_0
  - name: Brazil
    mesh: Plane40_Material003_0
`)

		conf := MustLoad(path)
		catalog, err := conf.GetCatalog()

		require.NoError(t, err)
		country, ok := catalog.ByMesh("Plane40_Material003_0")
		assert.True(t, ok)
		assert.Equal(t, "Brazil", country.Name)
	})

	t.Run("Rejects a broken catalog", func(t *testing.T) {
		path := writeConfig(t, `
catalog:
  - name: Japan
`)

		_, err := MustLoad(path).GetCatalog()

		assert.Error(t, err)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
