// Package hub implements a client for the Hugging Face model hub HTTP API.
package hub

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/outfit/internal/build"
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hub = (*Client)(nil)

// Client implements ports.Hub over HTTP.
type Client struct {
	endpoint   string
	token      string
	revision   string
	httpClient *http.Client
}

// NewClient creates a Client from the hub configuration.
// A zero Timeout leaves requests unbounded.
func NewClient(cfg domain.HubConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithHTTP creates a Client using the given http.Client.
func NewClientWithHTTP(cfg domain.HubConfig, httpClient *http.Client) *Client {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = domain.DefaultHubEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		token:      cfg.Token,
		revision:   cfg.Revision,
		httpClient: httpClient,
	}
}

// ref returns the revision to request for repo.
// A revision pinned on the repo wins over the configured default.
func (c *Client) ref(repo domain.Repo) string {
	if repo.Revision != "" {
		return repo.Revision
	}
	if c.revision != "" {
		return c.revision
	}
	return domain.DefaultRevision
}

// FileURL returns the resolve URL of filename in repo at revision.
func (c *Client) FileURL(repo domain.Repo, revision, filename string) string {
	var prefix string
	switch repo.Kind() {
	case domain.RepoSpace:
		prefix = "spaces/"
	case domain.RepoDataset:
		prefix = "datasets/"
	}
	return fmt.Sprintf("%s/%s%s/resolve/%s/%s",
		c.endpoint, prefix, repo.ID, url.PathEscape(revision), escapePath(filename))
}

// DownloadFile downloads filename from repo to localDir/filename.
func (c *Client) DownloadFile(ctx context.Context, repo domain.Repo, filename, localDir string) (string, error) {
	dest, err := localPath(localDir, filename)
	if err != nil {
		return "", err
	}

	if err := c.download(ctx, c.FileURL(repo, c.ref(repo), filename), dest); err != nil {
		return "", zerr.With(zerr.With(err, "repo", repo.ID), "file", filename)
	}
	return dest, nil
}

// download streams rawURL into dest through a sibling partial file.
func (c *Client) download(ctx context.Context, rawURL, dest string) error {
	req, err := c.newRequest(ctx, rawURL)
	if err != nil {
		return err
	}

	// The hub advertises the LFS sha256 on the redirect to the storage backend.
	var linkedEtag string
	client := *c.httpClient
	client.CheckRedirect = func(r *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		if r.Response != nil {
			if etag := r.Response.Header.Get("X-Linked-Etag"); etag != "" {
				linkedEtag = etag
			}
		}
		return nil
	}

	resp, err := client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "url", rawURL)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if err := statusError(resp, rawURL); err != nil {
		return err
	}

	if linkedEtag == "" {
		linkedEtag = resp.Header.Get("X-Linked-Etag")
	}
	expected := sha256FromEtag(linkedEtag)
	if expected == "" {
		expected = sha256FromEtag(resp.Header.Get("ETag"))
	}

	return writeAtomic(dest, resp.Body, resp.ContentLength, expected, rawURL)
}

func (c *Client) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "url", rawURL)
	}
	req.Header.Set("User-Agent", build.UserAgent())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func statusError(resp *http.Response, rawURL string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = domain.ErrHubUnauthorized
	case http.StatusNotFound:
		sentinel = domain.ErrHubNotFound
	default:
		sentinel = domain.ErrHubRequestFailed
	}

	err := zerr.Wrap(fmt.Errorf("unexpected status %s", resp.Status), sentinel.Error())
	return zerr.With(zerr.With(err, "status", resp.StatusCode), "url", rawURL)
}

// writeAtomic copies body into dest. The partial file is removed on any failure.
func writeAtomic(dest string, body io.Reader, size int64, expectedSHA, rawURL string) (err error) {
	if mkErr := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); mkErr != nil {
		return zerr.With(zerr.Wrap(mkErr, domain.ErrHubRequestFailed.Error()), "path", dest)
	}

	partial := dest + domain.PartialSuffix
	//nolint:gosec // dest is validated to stay inside the local directory
	f, err := os.OpenFile(partial, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "path", partial)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(partial)
		}
	}()

	digest := sha256.New()
	n, err := io.Copy(io.MultiWriter(f, digest), body)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrIncompleteDownload.Error()), "url", rawURL)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "url", rawURL)
	}

	if size >= 0 && n != size {
		err = zerr.With(zerr.With(
			zerr.Wrap(fmt.Errorf("received %d of %d bytes", n, size), domain.ErrIncompleteDownload.Error()),
			"url", rawURL), "path", dest)
		return err
	}

	if expectedSHA != "" {
		if got := hex.EncodeToString(digest.Sum(nil)); got != expectedSHA {
			err = zerr.With(zerr.With(
				zerr.Wrap(fmt.Errorf("expected sha256 %s, got %s", expectedSHA, got), domain.ErrChecksumMismatch.Error()),
				"url", rawURL), "path", dest)
			return err
		}
	}

	if err = f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "path", partial)
	}
	if err = os.Rename(partial, dest); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "path", dest)
	}
	return nil
}

// sha256FromEtag returns the lowercase hex sha256 carried by an ETag, or "" when it is not one.
// Git blob ETags (sha1) are ignored.
func sha256FromEtag(etag string) string {
	etag = strings.TrimPrefix(strings.TrimSpace(etag), "W/")
	etag = strings.ToLower(strings.Trim(etag, `"`))
	if len(etag) != sha256.Size*2 {
		return ""
	}
	if _, err := hex.DecodeString(etag); err != nil {
		return ""
	}
	return etag
}

// localPath joins a slash-separated remote path onto dir, rejecting paths that escape it.
func localPath(dir, remote string) (string, error) {
	rel := filepath.FromSlash(remote)
	if remote == "" || !filepath.IsLocal(rel) {
		return "", zerr.With(zerr.New(domain.ErrUnsafePath.Error()), "path", remote)
	}
	return filepath.Join(dir, rel), nil
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
