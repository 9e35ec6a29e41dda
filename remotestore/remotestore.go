// Package remotestore provides an optional remote object-storage backend
// for cache, the way perf-analysis's internal/storage abstracts local
// filesystem vs. Tencent COS behind one Storage interface — here scoped to
// pushing/pulling the same text-format cache artifacts to and from a COS
// bucket; the build command pushes them when run with --push-remote and a
// --cos-bucket configured.
package remotestore

import (
	"context"
	"fmt"
	"io"
)

// Store mirrors the subset of object-storage operations the cache package
// needs: push an artifact up after a local build, pull one down before
// falling back to a local rebuild.
type Store interface {
	Upload(ctx context.Context, key string, r io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Config selects and configures a remote Store.
type Config struct {
	Bucket    string
	Region    string
	SecretID  string
	SecretKey string
	Domain    string // defaults to "myqcloud.com"
	Scheme    string // defaults to "https"
}

// Validate checks that Config carries everything a COS client needs.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("remotestore: config is nil")
	}
	if c.Bucket == "" {
		return fmt.Errorf("remotestore: bucket is required")
	}
	if c.Region == "" {
		return fmt.Errorf("remotestore: region is required")
	}
	if c.SecretID == "" || c.SecretKey == "" {
		return fmt.Errorf("remotestore: credentials are required")
	}
	return nil
}

// New constructs a Store from cfg. Currently COS is the only backend;
// cfg.Validate runs first so callers get one consistent error shape.
func New(cfg *Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newCOSStore(cfg)
}
