package remotestore

import (
	"context"
	"fmt"
	"io"
	"os"
)

// PushArtifact uploads the local cache file at localPath to store under
// key, leaving the local file untouched — the remote copy is a backup,
// never the only copy.
func PushArtifact(ctx context.Context, store Store, localPath, key string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("remotestore: open local artifact %s: %w", localPath, err)
	}
	defer f.Close()

	if err := store.Upload(ctx, key, f); err != nil {
		return err
	}
	return nil
}

// PullArtifact downloads key from store to localPath whenever key exists
// remotely, creating or overwriting localPath, so a build can skip
// recomputation when a peer has already published the artifact. Returns (false, nil) on a remote miss — callers
// should fall back to a local rebuild, not treat it as an error.
func PullArtifact(ctx context.Context, store Store, key, localPath string) (bool, error) {
	exists, err := store.Exists(ctx, key)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	rc, err := store.Download(ctx, key)
	if err != nil {
		return false, err
	}
	defer rc.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return false, fmt.Errorf("remotestore: create local artifact %s: %w", localPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return false, fmt.Errorf("remotestore: write local artifact %s: %w", localPath, err)
	}
	return true, nil
}
