package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without editing the YAML file.
type envConfig struct {
	ConfigPath string // THEMEKIT_CONFIG: config file name or path
	ThemePath  string // THEMEKIT_THEME_PATH: theme directory
	ThemeURL   string // THEMEKIT_THEME_URL: public theme URL
	LogFile    string // THEMEKIT_LOG_FILE: JSON log destination
	Locale     string // THEMEKIT_LOCALE: translation locale
}

// knownEnvVars lists valid THEMEKIT_* environment variables.
var knownEnvVars = map[string]bool{
	"THEMEKIT_CONFIG":     true,
	"THEMEKIT_THEME_PATH": true,
	"THEMEKIT_THEME_URL":  true,
	"THEMEKIT_LOG_FILE":   true,
	"THEMEKIT_LOCALE":     true,
}

// loadEnvConfig reads the recognized THEMEKIT_* variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("THEMEKIT_CONFIG"),
		ThemePath:  os.Getenv("THEMEKIT_THEME_PATH"),
		ThemeURL:   os.Getenv("THEMEKIT_THEME_URL"),
		LogFile:    os.Getenv("THEMEKIT_LOG_FILE"),
		Locale:     os.Getenv("THEMEKIT_LOCALE"),
	}
}

// warnUnknownEnvVars reports unrecognized THEMEKIT_* variables.
// Catches typos like THEMEKIT_THEMEPATH.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "THEMEKIT_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnv fills flag values left empty from the environment.
// Priority: CLI flags > env vars > config file > defaults.
func applyEnv(env *envConfig, f *commonFlags) {
	if f.config == "" {
		f.config = env.ConfigPath
	}
	if f.themePath == "" {
		f.themePath = env.ThemePath
	}
	if f.themeURL == "" {
		f.themeURL = env.ThemeURL
	}
	if f.logFile == "" {
		f.logFile = env.LogFile
	}
	if f.locale == "" {
		f.locale = env.Locale
	}
}
