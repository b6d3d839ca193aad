package process

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SucceedsForZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX shell utilities")
	}

	err := NewExecutor().Run(context.Background(), Command{
		Executable: "true",
	})
	assert.NoError(t, err)
}

func TestRun_FoldsOutputIntoError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX shell utilities")
	}

	err := NewExecutor().Run(context.Background(), Command{
		Executable: "sh",
		Args:       []string{"-c", "echo broken pipe diagnostics >&2; exit 3"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe diagnostics")
}

func TestRun_MissingExecutableFails(t *testing.T) {
	err := NewExecutor().Run(context.Background(), Command{
		Executable: "definitely-not-installed-anywhere",
	})
	assert.Error(t, err)
}

func TestRun_HonorsWorkingDirAndEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX shell utilities")
	}

	dir := t.TempDir()
	err := NewExecutor().Run(context.Background(), Command{
		Executable: "sh",
		Args:       []string{"-c", `test "$(pwd)" = "$EXPECTED_DIR"`},
		WorkingDir: dir,
		Env:        map[string]string{"EXPECTED_DIR": dir},
	})
	assert.NoError(t, err)
}
