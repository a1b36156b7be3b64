package hub_test

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/outfit/internal/adapters/hub"
	"go.trai.ch/outfit/internal/core/domain"
)

func sha(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func newTestClient(t *testing.T, handler http.Handler, token string) *hub.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return hub.NewClientWithHTTP(domain.HubConfig{Endpoint: srv.URL + "/", Token: token}, srv.Client())
}

func TestClient_FileURL(t *testing.T) {
	c := hub.NewClient(domain.HubConfig{Endpoint: "https://huggingface.co"})

	tests := []struct {
		name string
		repo domain.Repo
		file string
		want string
	}{
		{
			name: "model",
			repo: domain.Repo{ID: "mattmdjaga/segformer_b2_clothes"},
			file: "onnx/model.onnx",
			want: "https://huggingface.co/mattmdjaga/segformer_b2_clothes/resolve/main/onnx/model.onnx",
		},
		{
			name: "space",
			repo: domain.Repo{ID: "pngwn/IDM-VTON", Type: domain.RepoSpace},
			file: "ckpt/humanparsing/parsing_lip.onnx",
			want: "https://huggingface.co/spaces/pngwn/IDM-VTON/resolve/main/ckpt/humanparsing/parsing_lip.onnx",
		},
		{
			name: "dataset",
			repo: domain.Repo{ID: "org/data", Type: domain.RepoDataset},
			file: "a b.txt",
			want: "https://huggingface.co/datasets/org/data/resolve/main/a%20b.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.FileURL(tt.repo, "main", tt.file))
		})
	}
}

func TestClient_FallbackURLMatchesCatalog(t *testing.T) {
	c := hub.NewClient(domain.HubConfig{})
	for _, a := range domain.DefaultArtifacts() {
		if a.FallbackURL == "" {
			continue
		}
		assert.Equal(t, a.FallbackURL, c.FileURL(a.Repo, a.Repo.Ref(), a.RemotePath), a.Name)
	}
}

func TestClient_DownloadFile(t *testing.T) {
	const body = "onnx-bytes"

	var gotAuth, gotUA string
	mux := http.NewServeMux()
	mux.HandleFunc("/lllyasviel/misc/resolve/main/fooocus_expansion.bin", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("ETag", `"`+sha(body)+`"`)
		_, _ = w.Write([]byte(body))
	})

	c := newTestClient(t, mux, "secret")
	dir := t.TempDir()

	path, err := c.DownloadFile(t.Context(), domain.Repo{ID: "lllyasviel/misc"}, "fooocus_expansion.bin", dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fooocus_expansion.bin"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.True(t, strings.HasPrefix(gotUA, "outfit/"))
	assert.NoFileExists(t, path+domain.PartialSuffix)
}

func TestClient_DownloadFile_MirrorsRemoteSubpath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/spaces/pngwn/IDM-VTON/resolve/main/ckpt/humanparsing/parsing_lip.onnx", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("lip"))
	})

	c := newTestClient(t, mux, "")
	root := t.TempDir()
	repo := domain.Repo{ID: "pngwn/IDM-VTON", Type: domain.RepoSpace}

	path, err := c.DownloadFile(t.Context(), repo, "ckpt/humanparsing/parsing_lip.onnx", root)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "ckpt", "humanparsing", "parsing_lip.onnx"), path)
	assert.FileExists(t, path)
}

func TestClient_DownloadFile_NoAuthHeaderWithoutToken(t *testing.T) {
	var hadAuth bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte("x"))
	}), "")

	_, err := c.DownloadFile(t.Context(), domain.Repo{ID: "a/b"}, "f", t.TempDir())

	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestClient_DownloadFile_LinkedEtagOnRedirect(t *testing.T) {
	const body = "lora-weights"

	tests := []struct {
		name    string
		etag    string
		wantErr string
	}{
		{name: "match", etag: sha(body)},
		{name: "mismatch", etag: sha("something else"), wantErr: domain.ErrChecksumMismatch.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/a/b/resolve/main/lora.safetensors", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Linked-Etag", `"`+tt.etag+`"`)
				http.Redirect(w, r, "/cdn/blob", http.StatusFound)
			})
			mux.HandleFunc("/cdn/blob", func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("ETag", `"not-a-sha"`)
				_, _ = w.Write([]byte(body))
			})

			c := newTestClient(t, mux, "")
			dir := t.TempDir()

			path, err := c.DownloadFile(t.Context(), domain.Repo{ID: "a/b"}, "lora.safetensors", dir)

			dest := filepath.Join(dir, "lora.safetensors")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.NoFileExists(t, dest)
				assert.NoFileExists(t, dest+domain.PartialSuffix)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, dest, path)
		})
	}
}

func TestClient_DownloadFile_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: domain.ErrHubUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: domain.ErrHubUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: domain.ErrHubNotFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: domain.ErrHubRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}), "")
			dir := t.TempDir()

			_, err := c.DownloadFile(t.Context(), domain.Repo{ID: "a/b"}, "model.onnx", dir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())
			assert.NoFileExists(t, filepath.Join(dir, "model.onnx"))
		})
	}
}

func TestClient_DownloadFile_TruncatedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(100))
		_, _ = w.Write([]byte("short"))
	}), "")
	dir := t.TempDir()

	_, err := c.DownloadFile(t.Context(), domain.Repo{ID: "a/b"}, "model.onnx", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrIncompleteDownload.Error())
	assert.NoFileExists(t, filepath.Join(dir, "model.onnx"))
	assert.NoFileExists(t, filepath.Join(dir, "model.onnx"+domain.PartialSuffix))
}

func TestClient_DownloadFile_UnsafePath(t *testing.T) {
	c := hub.NewClient(domain.HubConfig{Endpoint: "http://127.0.0.1:1"})

	for _, name := range []string{"../escape.bin", "/etc/passwd", ""} {
		_, err := c.DownloadFile(t.Context(), domain.Repo{ID: "a/b"}, name, t.TempDir())
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), domain.ErrUnsafePath.Error(), name)
	}
}

func TestClient_DownloadFile_RevisionPrecedence(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("x"))
	}))
	t.Cleanup(srv.Close)

	c := hub.NewClientWithHTTP(domain.HubConfig{Endpoint: srv.URL, Revision: "v2"}, srv.Client())

	_, err := c.DownloadFile(t.Context(), domain.Repo{ID: "a/b"}, "f", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/a/b/resolve/v2/f", gotPath)

	_, err = c.DownloadFile(t.Context(), domain.Repo{ID: "a/b", Revision: "pinned"}, "f", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/a/b/resolve/pinned/f", gotPath)
}

func TestWriteAtomic_SizeMismatch(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "file")

	err := hub.WriteAtomic(dest, strings.NewReader("abc"), 10, "", "http://example")

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrIncompleteDownload.Error())
	assert.NoFileExists(t, dest)
	assert.NoFileExists(t, dest+domain.PartialSuffix)
}

func TestWriteAtomic_UnknownSize(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "file")

	require.NoError(t, hub.WriteAtomic(dest, strings.NewReader("abc"), -1, sha("abc"), "http://example"))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestSHA256FromEtag(t *testing.T) {
	digest := sha("x")

	assert.Equal(t, digest, hub.SHA256FromEtag(`"`+digest+`"`))
	assert.Equal(t, digest, hub.SHA256FromEtag(`W/"`+strings.ToUpper(digest)+`"`))
	assert.Empty(t, hub.SHA256FromEtag(`"da39a3ee5e6b4b0d3255bfef95601890afd80709"`), "git sha1 etags are ignored")
	assert.Empty(t, hub.SHA256FromEtag(""))
	assert.Empty(t, hub.SHA256FromEtag(`"`+strings.Repeat("z", 64)+`"`))
}
