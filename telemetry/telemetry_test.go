package telemetry_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/reachcompress/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledByDefault_ReturnsNoopShutdown(t *testing.T) {
	cfg := &telemetry.Config{Enabled: false}
	shutdown, err := telemetry.Init(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartBuildAndQuery_NoopTracerStillReturnsUsableSpan(t *testing.T) {
	ctx, span := telemetry.StartBuild(context.Background(), 2, 128)
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()

	ctx2, span2 := telemetry.StartQuery(context.Background(), 3, 9)
	require.NotNil(t, ctx2)
	telemetry.RecordCacheOutcome(span2, "partition_2_pll_in.idx", true)
	span2.End()
}
