package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/katalvlaran/reachcompress/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLRepository_RecordBuild(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := registry.NewSQLRepository(db)

	mock.ExpectExec("INSERT INTO build_events").
		WithArgs("partition_1", int32(1), 500, 900, "DenseBitmatrix", "ok", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.RecordBuild(context.Background(), &registry.BuildEvent{
		ArtifactName:  "partition_1",
		PartitionID:   1,
		NumVertices:   500,
		NumEdges:      900,
		AlgorithmKind: "DenseBitmatrix",
		Outcome:       "ok",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_RecentBuilds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := registry.NewSQLRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "artifact_name", "partition_id", "num_vertices", "num_edges",
		"algorithm_kind", "outcome", "error_message", "created_at",
	}).AddRow(int64(2), "partition_1", int32(1), 500, 900, "DenseBitmatrix", "ok", "", time.Now())

	mock.ExpectQuery("SELECT id, artifact_name").WithArgs("partition_1", 5).WillReturnRows(rows)

	events, err := repo.RecentBuilds(context.Background(), "partition_1", 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "partition_1", events[0].ArtifactName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
