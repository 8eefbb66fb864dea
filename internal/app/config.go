package app

import (
	"os"
	"strings"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (BARISTA_ prefix), flags, or YAML config files.
type Config struct {
	Locale    string   `default:"" env:"LOCALE" yaml:"locale" usage:"Description language as a BCP 47 tag or Accept-Language list (falls back to LANG)"`
	MenuFiles []string `env:"MENU_FILES" yaml:"menu_files" flag:"menu" usage:"JSON-lines menu files to brew, .gz files are decompressed"`
	Samples   bool     `default:"true" env:"SAMPLES" yaml:"samples" usage:"Brew the house samples when no menu file is given"`
	Strict    bool     `default:"false" env:"STRICT" yaml:"strict" usage:"Fail when any drink is rejected"`
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files, and applies platform defaults.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "BARISTA",
		Files:     []string{"barista.yaml", "/etc/barista/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(acfg aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, acfg).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if len(cfg.MenuFiles) == 0 && !cfg.Samples {
		return nil, errors.New("nothing to brew: set BARISTA_MENU_FILES or enable samples")
	}

	return &cfg, nil
}

// applyPlatformDefaults derives the locale from the POSIX locale variables
// when none is configured, e.g. LANG=ru_RU.UTF-8 becomes "ru-RU".
func (c *Config) applyPlatformDefaults() {
	if c.Locale != "" {
		return
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag := posixLocaleTag(os.Getenv(name)); tag != "" {
			c.Locale = tag
			return
		}
	}
}

func posixLocaleTag(v string) string {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(v, "_", "-")
}
