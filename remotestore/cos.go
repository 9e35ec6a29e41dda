package remotestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tencentyun/cos-go-sdk-v5"
)

// cosStore implements Store for Tencent Cloud COS.
type cosStore struct {
	client *cos.Client
	bucket string
	region string
	domain string
	scheme string
}

func newCOSStore(cfg *Config) (*cosStore, error) {
	domain := cfg.Domain
	if domain == "" {
		domain = "myqcloud.com"
	}
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "https"
	}

	bucketURL, err := url.Parse(fmt.Sprintf("%s://%s.cos.%s.%s", scheme, cfg.Bucket, cfg.Region, domain))
	if err != nil {
		return nil, fmt.Errorf("remotestore: parse bucket URL: %w", err)
	}
	serviceURL, err := url.Parse(fmt.Sprintf("%s://cos.%s.%s", scheme, cfg.Region, domain))
	if err != nil {
		return nil, fmt.Errorf("remotestore: parse service URL: %w", err)
	}

	client := cos.NewClient(&cos.BaseURL{
		BucketURL:  bucketURL,
		ServiceURL: serviceURL,
	}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	return &cosStore{client: client, bucket: cfg.Bucket, region: cfg.Region, domain: domain, scheme: scheme}, nil
}

func (s *cosStore) Upload(ctx context.Context, key string, r io.Reader) error {
	if _, err := s.client.Object.Put(ctx, key, r, nil); err != nil {
		return fmt.Errorf("remotestore: upload %s: %w", key, err)
	}
	return nil
}

func (s *cosStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := s.client.Object.Get(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("remotestore: download %s: %w", key, err)
	}
	return resp.Body, nil
}

func (s *cosStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.Object.Delete(ctx, key, nil); err != nil {
		return fmt.Errorf("remotestore: delete %s: %w", key, err)
	}
	return nil
}

func (s *cosStore) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.Object.IsExist(ctx, key)
	if err != nil {
		return false, fmt.Errorf("remotestore: exists %s: %w", key, err)
	}
	return ok, nil
}

// URL returns the public URL for key, mirroring the bucket layout COS
// serves artifacts at.
func (s *cosStore) URL(key string) string {
	return fmt.Sprintf("%s://%s.cos.%s.%s/%s", s.scheme, s.bucket, s.region, s.domain, key)
}
