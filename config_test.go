package scribe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"site_name": "My Blog",
		"local_uri": "data/dev.db",
		"prod_uri": "host=db user=blog dbname=blog",
		"production": false,
		"mail_host": "smtp.example.com",
		"mail_port": 465,
		"mail_use_ssl": true,
		"mail_username": "owner@example.com",
		"mail_password": "secret",
		"admin_user": "admin",
		"admin_password": "hunter2",
		"session_secret": "s3cr3t",
		"upload_dir": "public/uploads",
		"posts_per_page": 5
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "My Blog", cfg.SiteName)
	require.Equal(t, "admin", cfg.AdminUser)
	require.Equal(t, 5, cfg.PostsPerPage)
	require.Equal(t, "data/dev.db", cfg.DatabaseURI(), "local URI is active outside production")

	cfg.Production = true
	require.Equal(t, "host=db user=blog dbname=blog", cfg.DatabaseURI())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "admin_user: admin\nadmin_password: pw\nsession_secret: s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "Blog", cfg.SiteName)
	require.Equal(t, ":3000", cfg.Addr)
	require.Equal(t, "data/blog.db", cfg.LocalURI)
	require.Equal(t, "public/uploads", cfg.UploadDir)
	require.Positive(t, cfg.PostsPerPage)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
