package registry

import "context"

// BuildEventRepository records and queries OfflineIndustry build history.
type BuildEventRepository interface {
	RecordBuild(ctx context.Context, ev *BuildEvent) error
	RecentBuilds(ctx context.Context, artifactName string, limit int) ([]*BuildEvent, error)
}

// CacheEventRepository records and queries cache save/load outcomes.
type CacheEventRepository interface {
	RecordCacheEvent(ctx context.Context, ev *CacheEvent) error
	HitRate(ctx context.Context, path string) (float64, error)
}
