package main

// Notes:
// - runMain: we test exit codes and output for every command against the
//   stock configuration, plus a theme directory fixture for asset-info.
// - main() itself is not tested: it only wires signals and os.Exit.

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// testEnv returns an environment writing to buffers. Log files are
// captured in memory.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Stdout: stdout,
		Stderr: stderr,
		OpenLog: func(string) (io.WriteCloser, error) {
			return nopWriteCloser{io.Discard}, nil
		},
	}
	return env, stdout, stderr
}

// writeThemeDir creates a theme directory with one metadata artifact.
func writeThemeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	js := filepath.Join(dir, "dist", "js")
	if err := os.MkdirAll(js, 0o755); err != nil {
		t.Fatal(err)
	}
	info := `{"dependencies": ["wp-i18n", "wp-hooks"], "version": "3f2a9c"}`
	if err := os.WriteFile(filepath.Join(js, "frontend.asset.json"), []byte(info), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout []string
		wantStderr string
	}{
		{
			name:       "no command",
			args:       []string{"themekit"},
			wantCode:   ExitUsage,
			wantStderr: "Usage:",
		},
		{
			name:       "unknown command",
			args:       []string{"themekit", "compile"},
			wantCode:   ExitUsage,
			wantStderr: "unknown command: compile",
		},
		{
			name:       "version",
			args:       []string{"themekit", "version"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"themekit dev"},
		},
		{
			name:     "render help",
			args:     []string{"themekit", "render", "--help"},
			wantCode: ExitSuccess,
		},
		{
			name:       "bad flag",
			args:       []string{"themekit", "hooks", "--bogus"},
			wantCode:   ExitUsage,
			wantStderr: "error:",
		},
		{
			name:       "missing config",
			args:       []string{"themekit", "head", "--config", "/nonexistent/theme.yaml"},
			wantCode:   ExitUsage,
			wantStderr: "hint:",
		},
		{
			name:       "asset-info without theme path",
			args:       []string{"themekit", "asset-info", "frontend"},
			wantCode:   ExitUsage,
			wantStderr: "--theme-path",
		},
		{
			name:     "head",
			args:     []string{"themekit", "head", "--theme-url", "https://example.com/theme"},
			wantCode: ExitSuccess,
			wantStdout: []string{
				"<script>",
				"<link rel='manifest' href='https://example.com/theme/manifest.json' />",
				"<link rel='stylesheet' id='styles-css' href='https://example.com/theme/dist/css/style.css' media='all' />",
			},
		},
		{
			name:     "render",
			args:     []string{"themekit", "render", "--theme-url", "https://example.com/theme", "--title", "Demo"},
			wantCode: ExitSuccess,
			wantStdout: []string{
				"<!DOCTYPE html>",
				"<title>Demo</title>",
				"<script src='https://example.com/theme/dist/js/frontend.js' id='frontend-js'></script>",
				"id='polyfill-js' nomodule></script>",
				"</html>",
			},
		},
		{
			name:     "render singular with thumbnail",
			args:     []string{"themekit", "render", "--singular", "--thumbnail", "https://cdn.example/hero.jpg", "--thumbnail-srcset", "https://cdn.example/hero.jpg 1200w"},
			wantCode: ExitSuccess,
			wantStdout: []string{
				`<link rel="preload" as="image" href="https://cdn.example/hero.jpg" imagesrcset="https://cdn.example/hero.jpg 1200w" imagesizes="100vw" />`,
			},
		},
		{
			name:     "hooks",
			args:     []string{"themekit", "hooks"},
			wantCode: ExitSuccess,
			wantStdout: []string{
				"KIND",
				"style_loader_tag",
				"script_loader_tag",
				"after_setup_theme",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got:\n%s", want, stdout.String())
				}
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Hooks - Admin registrations drop the style filter
// ---------------------------------------------------------------------------

func TestRunMain_Hooks(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := runMain(context.Background(), []string{"themekit", "hooks", "--admin"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if strings.Contains(stdout.String(), "style_loader_tag") {
		t.Errorf("admin listing should not include the style filter:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "admin_enqueue_scripts") {
		t.Errorf("admin listing should include admin_enqueue_scripts:\n%s", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_AssetInfo - Metadata lookup
// ---------------------------------------------------------------------------

func TestRunMain_AssetInfo(t *testing.T) {
	t.Parallel()

	dir := writeThemeDir(t)

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		code := runMain(context.Background(), []string{"themekit", "asset-info", "frontend", "--theme-path", dir}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
		}
		for _, want := range []string{"slug: frontend", "version: 3f2a9c", "wp-i18n", "wp-hooks"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("stdout should contain %q, got:\n%s", want, stdout.String())
			}
		}
	})

	t.Run("missing slug", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		code := runMain(context.Background(), []string{"themekit", "asset-info", "admin", "--theme-path", dir}, env)
		if code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
		if !strings.Contains(stderr.String(), "admin.asset.json") {
			t.Errorf("stderr should hint at the expected artifact, got:\n%s", stderr.String())
		}
	})

	t.Run("invalid slug", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		code := runMain(context.Background(), []string{"themekit", "asset-info", "../etc", "--theme-path", dir}, env)
		if code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_LogFile - --log-file failures map to ExitIO
// ---------------------------------------------------------------------------

func TestRunMain_LogFile(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	env.OpenLog = func(string) (io.WriteCloser, error) {
		return nil, errors.New("read-only file system")
	}

	code := runMain(context.Background(), []string{"themekit", "head", "--log-file", "/ro/themekit.log"}, env)
	if code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "cannot open log file") {
		t.Errorf("stderr = %q, want log file error", stderr.String())
	}
}
