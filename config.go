package scribe

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all deployment settings for a scribe site. It is loaded once
// at startup and injected into the App; nothing reads it as global state.
type Config struct {
	SiteName    string `mapstructure:"site_name"`
	SiteURL     string `mapstructure:"site_url"`
	SiteTagline string `mapstructure:"site_tagline"`

	Addr       string `mapstructure:"addr"`
	Production bool   `mapstructure:"production"`
	LocalURI   string `mapstructure:"local_uri"`
	ProdURI    string `mapstructure:"prod_uri"`

	MailHost     string `mapstructure:"mail_host"`
	MailPort     int    `mapstructure:"mail_port"`
	MailUseSSL   bool   `mapstructure:"mail_use_ssl"`
	MailUsername string `mapstructure:"mail_username"`
	MailPassword string `mapstructure:"mail_password"`

	AdminUser     string `mapstructure:"admin_user"`
	AdminPassword string `mapstructure:"admin_password"`
	SessionSecret string `mapstructure:"session_secret"`
	CookieSecure  bool   `mapstructure:"cookie_secure"`

	UploadDir    string `mapstructure:"upload_dir"`
	PostsPerPage int    `mapstructure:"posts_per_page"`
}

// DatabaseURI returns the connection string for the active environment.
func (c *Config) DatabaseURI() string {
	if c.Production {
		return c.ProdURI
	}
	return c.LocalURI
}

func (c *Config) setDefaults() {
	if c.SiteName == "" {
		c.SiteName = "Blog"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LocalURI == "" {
		c.LocalURI = "data/blog.db"
	}
	if c.UploadDir == "" {
		c.UploadDir = "public/uploads"
	}
	if c.PostsPerPage <= 0 {
		c.PostsPerPage = 5
	}
	if c.MailPort == 0 {
		c.MailPort = 465
		c.MailUseSSL = true
	}
}

// LoadConfig reads the config file at path (JSON or YAML, by extension) and
// environment variable overrides into a Config. The file is read exactly
// once, at process start.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithMailer overrides the SMTP mailer, e.g. with a fake for tests.
func WithMailer(m Mailer) Option {
	return func(a *App) {
		a.mailer = m
	}
}

// WithStaticDir sets the directory served under /public (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
