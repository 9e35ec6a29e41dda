// Package registry provides a durable build/cache-event ledger for
// reachcompress, backed by GORM + SQLite the way perf-analysis's
// internal/repository package backs task/result history — a record of
// what was built and what cache artifacts hit or missed, kept alongside
// (never instead of) the spec's own text-format cache files.
package registry

import "time"

// BuildEvent records one OfflineIndustry build of one partition's
// reachability index.
type BuildEvent struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ArtifactName  string    `gorm:"column:artifact_name;type:varchar(256);index"`
	PartitionID   int32     `gorm:"column:partition_id"`
	NumVertices   int       `gorm:"column:num_vertices"`
	NumEdges      int       `gorm:"column:num_edges"`
	AlgorithmKind string    `gorm:"column:algorithm_kind;type:varchar(64)"`
	Outcome       string    `gorm:"column:outcome;type:varchar(32)"` // the CLI writes "succeeded" or "failed"
	ErrorMessage  string    `gorm:"column:error_message;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for BuildEvent.
func (BuildEvent) TableName() string { return "build_events" }

// CacheEvent records one cache.LoadFromFile/SaveToFile outcome.
type CacheEvent struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Path      string    `gorm:"column:path;type:varchar(512);index"`
	Operation string    `gorm:"column:operation;type:varchar(16)"` // "save" or "load"
	Hit       bool      `gorm:"column:hit"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for CacheEvent.
func (CacheEvent) TableName() string { return "cache_events" }
