package main

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// envWithout returns the current environment minus the named variables.
func envWithout(env []string, names ...string) []string {
	var out []string
	for _, e := range env {
		drop := false
		for _, name := range names {
			if strings.HasPrefix(e, name+"=") {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, e)
		}
	}
	return out
}

func TestRunCommand_MissingDescription(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "requires at least 1 arg")
}

func TestRunCommand_MissingAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run", "Hire a senior backend engineer")
	cmd.Env = envWithout(cmd.Environ(), "GEMINI_API_KEY")

	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "GEMINI_API_KEY environment variable or --api-key flag is required")
}

func TestStatusCommand_UnknownSession(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// With no DATABASE_URL the store runs disconnected, so no session exists.
	cmd := exec.Command(binaryPath, "status", "no-such-session")
	cmd.Env = envWithout(cmd.Environ(), "DATABASE_URL")

	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "session not found")
}

func TestProfilesListCommand_Empty(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "profiles", "list")
	cmd.Env = envWithout(cmd.Environ(), "DATABASE_URL")

	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "No profiles found.")
}

func TestProfilesDeleteCommand_UnknownSession(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "profiles", "delete", "no-such-session")
	cmd.Env = envWithout(cmd.Environ(), "DATABASE_URL")

	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no profile found for session no-such-session")
}
