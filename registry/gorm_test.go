package registry_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/reachcompress/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&registry.BuildEvent{}, &registry.CacheEvent{}))
	return db
}

func TestGormRepository_RecordAndRecentBuilds(t *testing.T) {
	db := setupTestDB(t)
	repo := registry.NewGormRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ev := &registry.BuildEvent{
			ArtifactName:  "partition_0",
			PartitionID:   0,
			NumVertices:   100 + i,
			NumEdges:      200 + i,
			AlgorithmKind: "PLL",
			Outcome:       "ok",
		}
		require.NoError(t, repo.RecordBuild(ctx, ev))
	}

	events, err := repo.RecentBuilds(ctx, "partition_0", 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 102, events[0].NumVertices) // most recent first
}

func TestGormRepository_CacheEventHitRate(t *testing.T) {
	db := setupTestDB(t)
	repo := registry.NewGormRepository(db)
	ctx := context.Background()

	path := "partition_0_pll_in.idx"
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.RecordCacheEvent(ctx, &registry.CacheEvent{
			Path: path, Operation: "load", Hit: i != 0, // 3 hits, 1 miss
		}))
	}

	rate, err := repo.HitRate(ctx, path)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, rate, 1e-9)
}

func TestGormRepository_HitRate_NoEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := registry.NewGormRepository(db)

	rate, err := repo.HitRate(context.Background(), "never-loaded.idx")
	require.NoError(t, err)
	assert.Zero(t, rate)
}
