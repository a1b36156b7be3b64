package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/outfit/internal/adapters/fs"
	"go.trai.ch/outfit/internal/app"
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports/mocks"
	"go.trai.ch/outfit/internal/engine/fetcher"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	installer *mocks.MockEnvironmentInstaller
	logger    *mocks.MockLogger
	renderer  *mocks.MockRenderer
	provider  ComponentProvider
}

func newFixture(t *testing.T, modelsDir string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	fx := &fixture{
		installer: mocks.NewMockEnvironmentInstaller(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
	}

	cfg := domain.DefaultConfig()
	cfg.ModelsDir = modelsDir
	ws := fs.NewWorkspace()
	f := fetcher.New(mocks.NewMockHub(ctrl), mocks.NewMockDirectFetcher(ctrl), ws,
		mocks.NewMockManifestStore(ctrl), fs.NewHasher(), fx.logger, fx.renderer)
	application := app.New(cfg, fx.installer, ws, fs.NewLocker(time.Second), f,
		mocks.NewMockManifestStore(ctrl), fs.NewHasher(), fx.logger, fx.renderer)

	fx.provider = func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: fx.logger}, nil
	}
	return fx
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	fx := newFixture(t, t.TempDir())

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), fx.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "outfit version")
}

// TestRun_ProviderError verifies that initialization failures are printed without a logger.
func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("failed to parse config file")
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: failed to parse config file\n", stderr.String())
}

// TestRun_FatalBootstrap verifies that a failed Python install exits 1 through the logger.
func TestRun_FatalBootstrap(t *testing.T) {
	fx := newFixture(t, t.TempDir())

	fx.installer.EXPECT().InstallSystem(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.installer.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(nil)
	fx.installer.EXPECT().InstallPython(gomock.Any(), gomock.Any()).Return(domain.ErrPythonInstallFailed)
	fx.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	fx.logger.EXPECT().Error(domain.ErrPythonInstallFailed).Times(1)

	exitCode := run(context.Background(), []string{}, new(bytes.Buffer), new(bytes.Buffer), fx.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_MissingModelsKeepExitZero verifies that verification never changes the exit code.
func TestRun_MissingModelsKeepExitZero(t *testing.T) {
	fx := newFixture(t, t.TempDir())

	fx.renderer.EXPECT().OnVerification(gomock.Any()).Do(func(v domain.Verification) {
		assert.False(t, v.Ready())
	})

	exitCode := run(context.Background(), []string{"verify"}, new(bytes.Buffer), new(bytes.Buffer), fx.provider)

	assert.Equal(t, 0, exitCode)
}

// TestRun_AppOptions verifies that options are applied to the app before execution.
func TestRun_AppOptions(t *testing.T) {
	fx := newFixture(t, t.TempDir())

	applied := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), fx.provider,
		func(a *app.App) {
			assert.NotNil(t, a)
			applied = true
		})

	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
