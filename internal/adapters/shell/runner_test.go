//go:build unix

package shell_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/outfit/internal/adapters/shell"
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Info("hello"),
		log.EXPECT().Info("world"),
	)

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), domain.Command{Name: "sh", Args: []string{"-c", "echo hello; echo world"}})

	require.NoError(t, err)
}

func TestRunner_Run_StderrLoggedAsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Warn("oops")

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), domain.Command{Name: "sh", Args: []string{"-c", "echo oops >&2"}})

	require.NoError(t, err)
}

func TestRunner_Run_TrailingLineWithoutNewline(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Info("partial")

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), domain.Command{Name: "sh", Args: []string{"-c", "printf partial"}})

	require.NoError(t, err)
}

func TestRunner_Run_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), domain.Command{Name: "sh", Args: []string{"-c", "exit 3"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCommandFailed.Error())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh -c exit 3", zErr.Metadata()["command"])
}

func TestRunner_Run_EnvAndDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	log.EXPECT().Info("value=42")
	log.EXPECT().Info(resolved)

	runner := shell.NewRunner(log)
	err = runner.Run(t.Context(), domain.Command{
		Name: "sh",
		Args: []string{"-c", `echo "value=$OUTFIT_TEST_VALUE"; pwd -P`},
		Env:  []string{"OUTFIT_TEST_VALUE=42"},
		Dir:  dir,
	})

	require.NoError(t, err)
}

func TestRunner_Run_ExecutableNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	t.Setenv("PATH", t.TempDir())

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), domain.Command{Name: "definitely-not-installed"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrExecutableNotFound.Error())
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	err := runner.Run(t.Context(), domain.Command{})

	require.Error(t, err)
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	runner := shell.NewRunner(log)
	err := runner.Run(ctx, domain.Command{Name: "sh", Args: []string{"-c", "sleep 5"}})

	require.Error(t, err)
}
