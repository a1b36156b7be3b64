package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/outfit/internal/adapters/cas"
	"go.trai.ch/outfit/internal/adapters/fs"
	"go.trai.ch/outfit/internal/adapters/linear"
	"go.trai.ch/outfit/internal/app"
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports/mocks"
	"go.trai.ch/outfit/internal/engine/fetcher"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	root      string
	cfg       *domain.Config
	installer *mocks.MockEnvironmentInstaller
	hub       *mocks.MockHub
	direct    *mocks.MockDirectFetcher
	logger    *mocks.MockLogger
	store     *cas.Store
	hasher    *fs.Hasher
	out       *bytes.Buffer
	app       *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	h := &harness{
		root:      t.TempDir(),
		cfg:       domain.DefaultConfig(),
		installer: mocks.NewMockEnvironmentInstaller(ctrl),
		hub:       mocks.NewMockHub(ctrl),
		direct:    mocks.NewMockDirectFetcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		store:     cas.NewStore(),
		hasher:    fs.NewHasher(),
		out:       &bytes.Buffer{},
	}
	h.cfg.ModelsDir = h.root
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	ws := fs.NewWorkspace()
	renderer := linear.NewRenderer(h.out, false)
	f := fetcher.New(h.hub, h.direct, ws, h.store, h.hasher, h.logger, renderer)

	h.app = app.New(h.cfg, h.installer, ws, fs.NewLocker(time.Second), f, h.store, h.hasher, h.logger, renderer).
		WithPlatform("linux")
	return h
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// seed makes every default artifact present under root.
func seed(t *testing.T, root string) {
	t.Helper()
	for _, a := range domain.DefaultArtifacts() {
		writeFile(t, a.MarkerPath(root), a.Name)
	}
}

func expectBootstrap(h *harness) {
	gomock.InOrder(
		h.installer.EXPECT().InstallSystem(gomock.Any(), domain.DefaultSystemPackages()).Return(nil),
		h.installer.EXPECT().Uninstall(gomock.Any(), domain.ConflictingPackages()).Return(nil),
		h.installer.EXPECT().InstallPython(gomock.Any(), domain.DefaultPythonPackages()).Return(nil),
	)
}

func TestApp_Bootstrap(t *testing.T) {
	h := newHarness(t)
	expectBootstrap(h)

	require.NoError(t, h.app.Bootstrap(t.Context()))
}

func TestApp_Bootstrap_SkipsSystemOffLinux(t *testing.T) {
	h := newHarness(t)
	h.app.WithPlatform("darwin")

	h.installer.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(nil)
	h.installer.EXPECT().InstallPython(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, h.app.Bootstrap(t.Context()))
}

func TestApp_Bootstrap_SystemDisabledByConfig(t *testing.T) {
	h := newHarness(t)
	h.cfg.Bootstrap.System = false

	h.installer.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(nil)
	h.installer.EXPECT().InstallPython(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, h.app.Bootstrap(t.Context()))
}

func TestApp_Bootstrap_SystemFailureWarns(t *testing.T) {
	h := newHarness(t)

	h.installer.EXPECT().InstallSystem(gomock.Any(), gomock.Any()).Return(domain.ErrSystemInstallFailed)
	h.logger.EXPECT().Warn(gomock.Any()).Times(2)
	h.installer.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(nil)
	h.installer.EXPECT().InstallPython(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, h.app.Bootstrap(t.Context()))
}

func TestApp_Bootstrap_UninstallFailureIgnored(t *testing.T) {
	h := newHarness(t)

	h.installer.EXPECT().InstallSystem(gomock.Any(), gomock.Any()).Return(nil)
	h.installer.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(domain.ErrUninstallFailed)
	h.installer.EXPECT().InstallPython(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, h.app.Bootstrap(t.Context()))
}

func TestApp_Run_PythonFailureIsFatal(t *testing.T) {
	h := newHarness(t)

	h.installer.EXPECT().InstallSystem(gomock.Any(), gomock.Any()).Return(nil)
	h.installer.EXPECT().Uninstall(gomock.Any(), gomock.Any()).Return(nil)
	h.installer.EXPECT().InstallPython(gomock.Any(), gomock.Any()).
		Return(zerr.Wrap(errors.New("exit status 1"), domain.ErrPythonInstallFailed.Error()))

	err := h.app.Run(t.Context(), app.RunOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrPythonInstallFailed.Error())
	assert.Empty(t, h.out.String(), "fetch phase must not start")
}

func TestApp_Run_AllPresent(t *testing.T) {
	h := newHarness(t)
	expectBootstrap(h)
	seed(t, h.root)

	require.NoError(t, h.app.Run(t.Context(), app.RunOptions{}))

	out := h.out.String()
	assert.Contains(t, out, "Downloading models to: "+h.root)
	assert.Contains(t, out, "[6/6] Downloading BetterThanWords SDXL LoRA...")
	assert.Contains(t, out, "ALL DOWNLOADS COMPLETE")
	assert.Contains(t, out, "1. DRESS_SEG_MODEL_PATH: "+filepath.Join(h.root, "segformer_b2_clothes.onnx"))
	assert.Contains(t, out, "ALL CRITICAL MODELS VERIFIED. READY TO LAUNCH.")
}

func TestApp_Run_SkipBootstrap(t *testing.T) {
	h := newHarness(t)
	seed(t, h.root)

	require.NoError(t, h.app.Run(t.Context(), app.RunOptions{SkipBootstrap: true}))
}

func TestApp_Run_ConfigSkipsBootstrap(t *testing.T) {
	h := newHarness(t)
	h.cfg.Bootstrap.Skip = true
	seed(t, h.root)

	require.NoError(t, h.app.Run(t.Context(), app.RunOptions{}))
}

func TestApp_Run_FetchFailureStillReports(t *testing.T) {
	h := newHarness(t)
	seed(t, h.root)

	lora := domain.DefaultArtifacts()[5]
	require.NoError(t, os.Remove(lora.DestPath(h.root)))

	h.hub.EXPECT().DownloadFile(gomock.Any(), lora.Repo, lora.RemotePath, gomock.Any()).Return("", domain.ErrHubNotFound)

	require.NoError(t, h.app.Run(t.Context(), app.RunOptions{SkipBootstrap: true}))

	out := h.out.String()
	assert.Contains(t, out, "DOWNLOADS FINISHED WITH 1 FAILURE(S)")
	assert.Contains(t, out, "✗ MISSING: "+lora.DestPath(h.root))
	assert.Contains(t, out, "→ "+domain.ErrHubNotFound.Error())
	assert.Contains(t, out, "WARNING: SOME MODELS ARE MISSING. VTON MAY FAIL.")
}

func TestApp_Run_EmptyRootFetchesInOrder(t *testing.T) {
	h := newHarness(t)
	var order []string

	h.hub.EXPECT().Snapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, repo domain.Repo, localDir string) (int, error) {
			order = append(order, repo.ID)
			writeFile(t, filepath.Join(localDir, "config.json"), "{}")
			return 1, nil
		}).Times(2)
	h.hub.EXPECT().DownloadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, repo domain.Repo, filename, localDir string) (string, error) {
			order = append(order, repo.ID)
			if repo.ID == "pngwn/IDM-VTON" {
				writeFile(t, filepath.Join(localDir, "ckpt", "humanparsing", "partial.tmp"), "x")
				return "", domain.ErrHubRequestFailed
			}
			path := filepath.Join(localDir, filepath.FromSlash(filename))
			writeFile(t, path, repo.ID)
			return path, nil
		}).Times(4)
	h.direct.EXPECT().Fetch(gomock.Any(), domain.DefaultArtifacts()[2].FallbackURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, dest string) error {
			writeFile(t, dest, "onnx")
			return nil
		}).Times(1)

	require.NoError(t, h.app.Run(t.Context(), app.RunOptions{SkipBootstrap: true}))

	assert.Equal(t, []string{
		"vikhyatk/moondream2",
		"sayeed99/segformer-b3-fashion",
		"pngwn/IDM-VTON",
		"mattmdjaga/segformer_b2_clothes",
		"lllyasviel/misc",
		"AiWise/BetterThanWords-merged-SDXL-LoRA-v3",
	}, order)
	assert.NoDirExists(t, filepath.Join(h.root, "ckpt"))
	assert.NoDirExists(t, filepath.Join(h.root, "onnx"))

	out := h.out.String()
	assert.Contains(t, out, "Hub download failed, trying direct URL...")
	assert.Contains(t, out, "ALL DOWNLOADS COMPLETE")
	assert.Contains(t, out, "✓ FOUND: parsing_lip.onnx")
	assert.Contains(t, out, "ALL CRITICAL MODELS VERIFIED. READY TO LAUNCH.")

	// A second run finds everything in place and makes no further hub calls.
	h.out.Reset()
	require.NoError(t, h.app.Run(t.Context(), app.RunOptions{SkipBootstrap: true}))
	assert.Len(t, order, 6)
	assert.Contains(t, h.out.String(), "ALL CRITICAL MODELS VERIFIED. READY TO LAUNCH.")
}

func TestApp_ReadOnlyCommandsDoNotCreateRoot(t *testing.T) {
	h := newHarness(t)
	missing := filepath.Join(t.TempDir(), "typo")

	require.NoError(t, h.app.Plan(missing))
	_, err := h.app.Env(missing)
	require.NoError(t, err)
	_, err = h.app.Verify(t.Context(), app.VerifyOptions{ModelsDir: missing, Deep: true})
	require.NoError(t, err)

	assert.NoDirExists(t, missing)
}

func TestApp_Run_ModelsDirOverride(t *testing.T) {
	h := newHarness(t)
	other := filepath.Join(t.TempDir(), "elsewhere")
	seed(t, other)

	require.NoError(t, h.app.Run(t.Context(), app.RunOptions{SkipBootstrap: true, ModelsDir: other}))

	assert.Contains(t, h.out.String(), "Downloading models to: "+other)
}

func TestApp_Run_Cancelled(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := h.app.Run(ctx, app.RunOptions{SkipBootstrap: true})

	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, h.out.String(), "FINAL MODEL VERIFICATION")
}

func TestApp_Verify(t *testing.T) {
	h := newHarness(t)
	seed(t, h.root)
	require.NoError(t, os.Remove(filepath.Join(h.root, "humanparsing", "parsing_lip.onnx")))

	v, err := h.app.Verify(t.Context(), app.VerifyOptions{})

	require.NoError(t, err)
	require.Len(t, v.Entries, 5)
	assert.False(t, v.Ready())
	assert.Equal(t, domain.EntryMissing, v.Entries[2].Status)
	assert.NoError(t, v.Entries[2].Reason, "no fetch report, no reason")
	assert.Contains(t, h.out.String(), "✗ MISSING:")
}

func TestApp_Verify_Deep(t *testing.T) {
	h := newHarness(t)
	seed(t, h.root)

	for _, name := range []string{"segformer-b2-clothes", "fooocus-expansion"} {
		var art domain.Artifact
		for _, a := range domain.DefaultArtifacts() {
			if a.Name == name {
				art = a
			}
		}
		digest, size, err := h.hasher.HashFile(art.MarkerPath(h.root))
		require.NoError(t, err)
		require.NoError(t, h.store.Put(h.root, domain.ManifestRecord{
			Artifact: art.Name, Path: art.MarkerRel(), Size: size, Digest: digest,
		}))
	}
	// Tamper with one recorded file.
	writeFile(t, filepath.Join(h.root, "prompt_expansion", "fooocus_expansion", "pytorch_model.bin"), "truncated")

	v, err := h.app.Verify(t.Context(), app.VerifyOptions{Deep: true})
	require.NoError(t, err)

	status := make(map[string]domain.EntryStatus, len(v.Entries))
	for _, e := range v.Entries {
		status[e.Entry.Artifact] = e.Status
	}
	assert.Equal(t, domain.EntryFound, status["segformer-b2-clothes"])
	assert.Equal(t, domain.EntryCorrupt, status["fooocus-expansion"])
	assert.Equal(t, domain.EntryFound, status["betterthanwords-lora"], "files without a record are trusted")
	assert.Contains(t, h.out.String(), "✗ CORRUPT: ")
}

func TestApp_Plan(t *testing.T) {
	h := newHarness(t)
	writeFile(t, filepath.Join(h.root, "moondream2", "config.json"), "{}")

	require.NoError(t, h.app.Plan(""))

	out := h.out.String()
	assert.Contains(t, out, "Models root: "+h.root)
	assert.Contains(t, out, "5 of 6 artifact(s) would be fetched.")
}

func TestApp_Env(t *testing.T) {
	h := newHarness(t)

	hints, err := h.app.Env("")

	require.NoError(t, err)
	require.Len(t, hints, 4)
	assert.Equal(t, domain.PathHint{Name: "DRESS_SEG_MODEL_PATH", Path: filepath.Join(h.root, "segformer_b2_clothes.onnx")}, hints[0])
	assert.Equal(t, "MOONDREAM_MODEL_PATH", hints[3].Name)
}

func TestApp_Clean(t *testing.T) {
	h := newHarness(t)
	seed(t, h.root)
	writeFile(t, filepath.Join(h.root, "ckpt", "humanparsing", "parsing_lip.onnx"), "stale")
	writeFile(t, filepath.Join(h.root, "onnx", "model.onnx.part"), "partial")
	writeFile(t, filepath.Join(h.root, "loras", "lora.safetensors.part"), "partial")
	require.NoError(t, h.store.Put(h.root, domain.ManifestRecord{Artifact: "moondream2", Path: "moondream2/config.json"}))

	require.NoError(t, h.app.Clean(t.Context(), app.CleanOptions{}))

	assert.NoDirExists(t, filepath.Join(h.root, "ckpt"))
	assert.NoDirExists(t, filepath.Join(h.root, "onnx"))
	assert.NoFileExists(t, filepath.Join(h.root, "loras", "lora.safetensors.part"))
	assert.DirExists(t, domain.ManifestPath(h.root), "manifest is kept without --manifest")
	for _, a := range domain.DefaultArtifacts() {
		assert.FileExists(t, a.MarkerPath(h.root))
	}

	require.NoError(t, h.app.Clean(t.Context(), app.CleanOptions{Manifest: true}))
	assert.NoDirExists(t, domain.ManifestPath(h.root))
}
