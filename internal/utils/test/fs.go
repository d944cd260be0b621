package testutils

import (
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// SetupHomeDir sets up the $HOME directory for a test
// and returns the directory name along with a reset function
func SetupHomeDir(newHome string) (string, func()) {
	origHome := os.Getenv("HOME")
	if newHome == "" {
		newHome = "."
	}

	homedir.DisableCache = true
	_ = os.Setenv("HOME", newHome)

	return newHome, func() {
		homedir.DisableCache = false
		_ = os.Setenv("HOME", origHome)
	}
}

// NewHomeDir points $HOME at a new temporary directory for the duration of the test
func NewHomeDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	_, resetHomeDir := SetupHomeDir(dir)
	t.Cleanup(resetHomeDir)
	return dir
}
