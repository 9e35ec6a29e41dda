package registry

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLRepository is a lighter-weight BuildEventRepository over a raw
// *sql.DB, the way perf-analysis's MySQLTaskRepository sits alongside its
// GORM equivalent — useful where a caller already holds a *sql.DB (or, in
// tests, a go-sqlmock double) and doesn't want GORM's model overhead.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository wraps an already-migrated *sql.DB.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// RecordBuild inserts a BuildEvent row via a raw INSERT.
func (r *SQLRepository) RecordBuild(ctx context.Context, ev *BuildEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO build_events (artifact_name, partition_id, num_vertices, num_edges, algorithm_kind, outcome, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.ArtifactName, ev.PartitionID, ev.NumVertices, ev.NumEdges, ev.AlgorithmKind, ev.Outcome, ev.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("registry: record build event: %w", err)
	}
	return nil
}

// RecentBuilds retrieves the most recent build events for an artifact.
func (r *SQLRepository) RecentBuilds(ctx context.Context, artifactName string, limit int) ([]*BuildEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, artifact_name, partition_id, num_vertices, num_edges, algorithm_kind, outcome, error_message, created_at
		 FROM build_events WHERE artifact_name = ? ORDER BY id DESC LIMIT ?`,
		artifactName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("registry: recent builds: %w", err)
	}
	defer rows.Close()

	var out []*BuildEvent
	for rows.Next() {
		ev := &BuildEvent{}
		if err := rows.Scan(&ev.ID, &ev.ArtifactName, &ev.PartitionID, &ev.NumVertices, &ev.NumEdges,
			&ev.AlgorithmKind, &ev.Outcome, &ev.ErrorMessage, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("registry: scan build event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
