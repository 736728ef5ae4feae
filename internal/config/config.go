package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfigFile  = "OGCARD_CONFIG"
	EnvOutDir      = "OGCARD_OUT_DIR"
	EnvFont        = "OGCARD_FONT"
	EnvQRCode      = "OGCARD_QR"
	EnvFramebuffer = "OGCARD_FRAMEBUFFER"
)

// Defaults match the Next.js app the card is published with.
const (
	DefaultOutDir   = "~/projects/clawd-pfp-nft/packages/nextjs/public"
	DefaultFontPath = "/System/Library/Fonts/Helvetica.ttc"
)

// Config contains settings for one generator run.
//
// Sources are applied in order, later ones winning:
// - Default()
// - a TOML file (ApplyFile)
// - environment variables (ApplyEnv)
// - flags set on the command line (main)
type Config struct {
	OutDir   string `toml:"out_dir"`
	FontPath string `toml:"font"`
	QRCode   bool   `toml:"qr_code"`

	// Framebuffer is a device such as /dev/fb0; empty disables the preview.
	Framebuffer string `toml:"framebuffer"`
}

func Default() Config {
	return Config{OutDir: DefaultOutDir, FontPath: DefaultFontPath}
}

// fileConfig uses pointers so keys absent from the file keep earlier values.
type fileConfig struct {
	OutDir      *string `toml:"out_dir"`
	FontPath    *string `toml:"font"`
	QRCode      *bool   `toml:"qr_code"`
	Framebuffer *string `toml:"framebuffer"`
}

// ApplyFile overlays the keys present in the TOML file at path.
func (cfg *Config) ApplyFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if fc.OutDir != nil {
		cfg.OutDir = *fc.OutDir
	}
	if fc.FontPath != nil {
		cfg.FontPath = *fc.FontPath
	}
	if fc.QRCode != nil {
		cfg.QRCode = *fc.QRCode
	}
	if fc.Framebuffer != nil {
		cfg.Framebuffer = *fc.Framebuffer
	}
	return nil
}

// ApplyEnv overlays the OGCARD_* environment variables that are set.
func (cfg *Config) ApplyEnv() error {
	if v := os.Getenv(EnvOutDir); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(EnvFont); v != "" {
		cfg.FontPath = v
	}
	if v := os.Getenv(EnvFramebuffer); v != "" {
		cfg.Framebuffer = v
	}
	if raw := os.Getenv(EnvQRCode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q): %w", EnvQRCode, raw, err)
		}
		cfg.QRCode = parsed
	}
	return nil
}

// Resolve expands "~" in the path fields against the user's home directory.
func (cfg Config) Resolve() (Config, error) {
	var err error
	if cfg.OutDir, err = ExpandHome(cfg.OutDir); err != nil {
		return Config{}, err
	}
	if cfg.FontPath, err = ExpandHome(cfg.FontPath); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~" or "~/" with the home directory.
// Other paths, including "~user/...", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
