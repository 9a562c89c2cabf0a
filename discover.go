package logfacade

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// configSource describes where the active configuration came from.
type configSource struct {
	// Path is empty when no file was found and defaults are in use.
	Path string
	// Section is true when Path is a general application config whose
	// "logging" section holds the configuration.
	Section bool
}

// defaultAppConfigPath mirrors the usual "<executable>.config" convention:
// the application config sits next to the binary and shares its name.
func defaultAppConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return emptyString
	}
	return strings.TrimSuffix(exe, filepath.Ext(exe)) + defaultAppConfigExt
}

// discoverConfig prefers a dedicated logging file colocated with the app
// config over the app config itself.
func discoverConfig(appConfigPath string) configSource {
	if appConfigPath == emptyString {
		return configSource{}
	}
	dir := filepath.Dir(appConfigPath)
	for _, name := range dedicatedConfigNames {
		p := filepath.Join(dir, name)
		if isFile(p) {
			return configSource{Path: p}
		}
	}
	if isFile(appConfigPath) {
		return configSource{Path: appConfigPath, Section: true}
	}
	return configSource{}
}

// loadConfig reads the configuration from src, applying environment
// overrides, and validates it.
func loadConfig(src configSource) (*Config, error) {
	const op errors.Op = "logfacade.loadConfig"

	var cfg *Config
	switch {
	case src.Path == emptyString:
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigLoad)
		}
	case src.Section:
		var app appConfigFile
		if err := cleanenv.ReadConfig(src.Path, &app); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigLoad)
		}
		cfg = &app.Logging
	default:
		cfg = &Config{}
		if err := cleanenv.ReadConfig(src.Path, cfg); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigLoad)
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
