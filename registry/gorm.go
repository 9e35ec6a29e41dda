package registry

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormRepository implements BuildEventRepository and CacheEventRepository
// over a GORM handle, the way perf-analysis's GormTaskRepository wraps a
// *gorm.DB per concern.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository wraps an already-opened, already-migrated *gorm.DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// RecordBuild inserts a BuildEvent row.
func (r *GormRepository) RecordBuild(ctx context.Context, ev *BuildEvent) error {
	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		return fmt.Errorf("registry: record build event: %w", err)
	}
	return nil
}

// RecentBuilds returns the most recent build events for an artifact,
// newest first.
func (r *GormRepository) RecentBuilds(ctx context.Context, artifactName string, limit int) ([]*BuildEvent, error) {
	var events []*BuildEvent
	err := r.db.WithContext(ctx).
		Where("artifact_name = ?", artifactName).
		Order("id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("registry: recent builds: %w", err)
	}
	return events, nil
}

// RecordCacheEvent inserts a CacheEvent row.
func (r *GormRepository) RecordCacheEvent(ctx context.Context, ev *CacheEvent) error {
	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		return fmt.Errorf("registry: record cache event: %w", err)
	}
	return nil
}

// HitRate returns the fraction of "load" CacheEvents for path that were
// hits. Returns 0 if there are no load events recorded for path.
func (r *GormRepository) HitRate(ctx context.Context, path string) (float64, error) {
	var total, hits int64

	if err := r.db.WithContext(ctx).Model(&CacheEvent{}).
		Where("path = ? AND operation = ?", path, "load").
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("registry: hit rate total: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).Model(&CacheEvent{}).
		Where("path = ? AND operation = ? AND hit = ?", path, "load", true).
		Count(&hits).Error; err != nil {
		return 0, fmt.Errorf("registry: hit rate hits: %w", err)
	}

	return float64(hits) / float64(total), nil
}
