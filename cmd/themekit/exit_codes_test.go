package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the themekit and config
//   packages, plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions and that custom codes
//   stay below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-themekit"
	"github.com/alnah/go-themekit/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"asset info not found", themekit.ErrAssetInfoNotFound, ExitIO},
		{"open log", ErrOpenLog, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},
		{"asset info error", &assetInfoError{themePath: "/t", slug: "x", err: themekit.ErrAssetInfoNotFound}, ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"invalid theme config", themekit.ErrInvalidConfig, ExitUsage},
		{"invalid asset path", themekit.ErrInvalidAssetPath, ExitUsage},
		{"invalid asset name", themekit.ErrInvalidAssetName, ExitUsage},
		{"asset info parse", themekit.ErrAssetInfoParse, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"wrapped usage", fmt.Errorf("flags: %w", ErrUsage), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell reserved codes", code)
		}
	}
}
