package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoot(t *testing.T, yaml string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "conf"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "conf", "global.yaml"), []byte(yaml), 0o644))
	return root
}

const minimalYAML = `
http:
  listen_addr: ":8080"
database:
  driver: sqlite
  dsn: ":memory:"
`

func TestLoadFrom_DefaultsAndEnvOverlay(t *testing.T) {
	root := writeRoot(t, minimalYAML)
	t.Setenv("BADNEWS_HTTP__LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("BADNEWS_SEED__QUANTITY", "42")

	cfg, err := LoadFrom(root)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.ListenAddr)
	assert.Equal(t, 42, cfg.Seed.Quantity)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "development", cfg.Metrics.Environment)
	assert.Equal(t, root, cfg.Paths.Root)
	assert.Same(t, cfg, Get())
}

func TestLoadFrom_DotEnv(t *testing.T) {
	root := writeRoot(t, minimalYAML)
	require.NoError(t, os.WriteFile(filepath.Join(root, "conf", ".env"),
		[]byte("BADNEWS_LOG__LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BADNEWS_LOG__LEVEL") })

	cfg, err := LoadFrom(root)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_Durations(t *testing.T) {
	root := writeRoot(t, minimalYAML+`  conn_max_lifetime: 5m
`)
	cfg, err := LoadFrom(root)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoadFrom_ValidationFailures(t *testing.T) {
	cases := map[string]string{
		"unknown driver": `
http: {listen_addr: ":8080"}
database: {driver: oracle, dsn: "x"}
`,
		"missing dsn": `
http: {listen_addr: ":8080"}
database: {driver: sqlite}
`,
		"bad listen addr": `
http: {listen_addr: "nope"}
database: {driver: sqlite, dsn: "x"}
`,
		"two password verbs": `
http: {listen_addr: ":8080"}
database: {driver: mysql, dsn: "u:%s@tcp(h)/%s"}
`,
		"bad log level": `
http: {listen_addr: ":8080"}
database: {driver: sqlite, dsn: "x"}
log: {level: loud}
`,
	}
	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(writeRoot(t, yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFrom_MissingYAML(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	assert.Error(t, err)
}

func TestBuildDSN(t *testing.T) {
	d := Database{DSN: "badnews:%s@tcp(db:3306)/badnews"}
	assert.Equal(t, "badnews:geheim@tcp(db:3306)/badnews", d.BuildDSN("geheim"))

	d = Database{DSN: ":memory:"}
	assert.Equal(t, ":memory:", d.BuildDSN("ignored"))
}

func TestRootDir_EnvOverride(t *testing.T) {
	t.Setenv("BADNEWS_ROOT", "/srv/badnews")
	assert.Equal(t, "/srv/badnews", rootDir())
}
