package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/zerr"
)

// markerFile is written last so that its presence implies a complete snapshot.
const markerFile = "config.json"

// repoInfo is the subset of the revision API response the snapshot needs.
type repoInfo struct {
	SHA      string    `json:"sha"`
	Siblings []sibling `json:"siblings"`
}

type sibling struct {
	RFilename string `json:"rfilename"`
}

// Snapshot downloads every file of repo into localDir, pinned to the commit the revision resolves to.
func (c *Client) Snapshot(ctx context.Context, repo domain.Repo, localDir string) (int, error) {
	info, err := c.revisionInfo(ctx, repo)
	if err != nil {
		return 0, err
	}

	pinned := info.SHA
	if pinned == "" {
		pinned = c.ref(repo)
	}

	files := make([]string, 0, len(info.Siblings))
	for _, s := range info.Siblings {
		files = append(files, s.RFilename)
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i] == markerFile || files[j] == markerFile {
			return files[j] == markerFile && files[i] != markerFile
		}
		return files[i] < files[j]
	})

	// Validate every path before writing anything.
	dests := make([]string, len(files))
	for i, name := range files {
		dest, err := localPath(localDir, name)
		if err != nil {
			return 0, zerr.With(err, "repo", repo.ID)
		}
		dests[i] = dest
	}

	downloaded := 0
	for i, name := range files {
		if _, statErr := os.Stat(dests[i]); statErr == nil {
			continue
		}
		if err := c.download(ctx, c.FileURL(repo, pinned, name), dests[i]); err != nil {
			return downloaded, zerr.With(zerr.With(err, "repo", repo.ID), "file", name)
		}
		downloaded++
	}

	return downloaded, nil
}

// RevisionURL returns the API URL describing repo at revision.
func (c *Client) RevisionURL(repo domain.Repo, revision string) string {
	var kind string
	switch repo.Kind() {
	case domain.RepoSpace:
		kind = "spaces"
	case domain.RepoDataset:
		kind = "datasets"
	default:
		kind = "models"
	}
	return fmt.Sprintf("%s/api/%s/%s/revision/%s", c.endpoint, kind, repo.ID, escapePath(revision))
}

func (c *Client) revisionInfo(ctx context.Context, repo domain.Repo) (*repoInfo, error) {
	rawURL := c.RevisionURL(repo, c.ref(repo))

	req, err := c.newRequest(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "url", rawURL)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if err := statusError(resp, rawURL); err != nil {
		return nil, zerr.With(err, "repo", repo.ID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHubRequestFailed.Error()), "url", rawURL)
	}

	var info repoInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHubParseFailed.Error()), "url", rawURL)
	}
	if len(info.Siblings) == 0 {
		return nil, zerr.With(zerr.Wrap(fmt.Errorf("no files at %s", c.ref(repo)), domain.ErrHubNotFound.Error()), "repo", repo.ID)
	}

	return &info, nil
}
