package remotestore_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/reachcompress/remotestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store double, standing in for COS in tests —
// the same role perf-analysis's LocalStorage plays as a Storage backend
// that doesn't need network access.
type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore { return &memStore{objects: make(map[string][]byte)} }

func (m *memStore) Upload(_ context.Context, key string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStore) Download(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func TestPushThenPullArtifact_RoundTrips(t *testing.T) {
	store := newMemStore()
	dir := t.TempDir()

	localPath := filepath.Join(dir, "partition_0_pll_in.idx")
	require.NoError(t, os.WriteFile(localPath, []byte("5\n0 1 2\n"), 0644))

	ctx := context.Background()
	require.NoError(t, remotestore.PushArtifact(ctx, store, localPath, "partition_0_pll_in.idx"))

	pulledPath := filepath.Join(dir, "pulled.idx")
	hit, err := remotestore.PullArtifact(ctx, store, "partition_0_pll_in.idx", pulledPath)
	require.NoError(t, err)
	assert.True(t, hit)

	data, err := os.ReadFile(pulledPath)
	require.NoError(t, err)
	assert.Equal(t, "5\n0 1 2\n", string(data))
}

func TestPullArtifact_MissReturnsFalseNotError(t *testing.T) {
	store := newMemStore()
	dir := t.TempDir()

	hit, err := remotestore.PullArtifact(context.Background(), store, "never-pushed.idx", filepath.Join(dir, "out.idx"))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &remotestore.Config{}
	assert.Error(t, cfg.Validate())

	cfg = &remotestore.Config{Bucket: "b", Region: "r", SecretID: "id", SecretKey: "key"}
	assert.NoError(t, cfg.Validate())
}
