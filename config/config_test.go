package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sagar1314-oops/ArecaMart/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	c := qt.New(t)

	cfg := config.LoadConfig("")
	c.Assert(cfg.Web.Port, qt.Equals, 1816)
	c.Assert(cfg.System.Location, qt.Equals, "Asia/Kolkata")
	c.Assert(cfg.Database.Type, qt.Equals, "postgres")

	// Loading must not mutate the shared defaults.
	cfg.Web.Port = 9999
	c.Assert(config.DefaultAppConfig.Web.Port, qt.Equals, 1816)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c := qt.New(t)
	cfg := config.LoadConfig("/nonexistent/arecamart.yml")
	c.Assert(cfg.Web.Port, qt.Equals, 1816)
}

func TestLoadConfigFromFile(t *testing.T) {
	c := qt.New(t)

	cfile := filepath.Join(t.TempDir(), "arecamart.yml")
	err := os.WriteFile(cfile, []byte(`
system:
  workdir: /tmp/arecamart-test
web:
  port: 2816
database:
  host: db.internal
  name: arecamart_test
`), 0o644)
	c.Assert(err, qt.IsNil)

	cfg := config.LoadConfig(cfile)
	c.Assert(cfg.System.Workdir, qt.Equals, "/tmp/arecamart-test")
	c.Assert(cfg.Web.Port, qt.Equals, 2816)
	c.Assert(cfg.Database.Host, qt.Equals, "db.internal")
	c.Assert(cfg.Database.Name, qt.Equals, "arecamart_test")
	// Untouched keys keep their defaults.
	c.Assert(cfg.Web.Host, qt.Equals, "0.0.0.0")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	c := qt.New(t)

	t.Setenv("ARECAMART_WEB_PORT", "3816")
	t.Setenv("ARECAMART_DB_HOST", "pg.example.org")
	t.Setenv("ARECAMART_SYSTEM_DEBUG", "false")
	t.Setenv("ARECAMART_SMTP_ENABLED", "not-a-bool")

	cfg := config.LoadConfig("")
	c.Assert(cfg.Web.Port, qt.Equals, 3816)
	c.Assert(cfg.Database.Host, qt.Equals, "pg.example.org")
	c.Assert(cfg.System.Debug, qt.IsFalse)
	// Unparseable values are ignored.
	c.Assert(cfg.Smtp.Enabled, qt.IsFalse)
}
