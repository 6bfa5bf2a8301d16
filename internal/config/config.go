package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config collects the storefront settings. Values come from an optional YAML
// file first and FERRETERIA_* environment variables second; env wins.
type Config struct {
	StoreName      string `yaml:"store_name"`
	Addr           string `yaml:"addr"`
	CatalogURL     string `yaml:"catalog_url"`
	WhatsAppNumber string `yaml:"whatsapp_number"`
	TemplatesDir   string `yaml:"templates_dir"`
	PublicDir      string `yaml:"public_dir"`
	ContentDir     string `yaml:"content_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StoreName:      "Ferretería El Sol",
		Addr:           ":8080",
		WhatsAppNumber: "2645776592",
		TemplatesDir:   "templates",
		PublicDir:      "public",
		ContentDir:     "content",
	}
}

// Load reads the YAML file at path when it exists and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	// Port resolution: prefer FERRETERIA_PORT, then Cloud Run's PORT.
	if port := firstEnv("FERRETERIA_PORT", "PORT"); port != "" {
		c.Addr = ":" + port
	}
	if v := os.Getenv("FERRETERIA_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("FERRETERIA_CATALOG_URL"); v != "" {
		c.CatalogURL = v
	}
	if v := os.Getenv("FERRETERIA_WHATSAPP"); v != "" {
		c.WhatsAppNumber = v
	}
	if v := os.Getenv("FERRETERIA_STORE_NAME"); v != "" {
		c.StoreName = v
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
