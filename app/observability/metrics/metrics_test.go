package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppMetrics_Idempotent(t *testing.T) {
	InitAppMetrics()
	first := Get()
	InitAppMetrics()
	require.NotNil(t, first)
	assert.Same(t, first, Get())
}

func TestRecordHelpers_NilReceiver(t *testing.T) {
	var m *AppMetrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.RecordRecommendation(ctx, "success", 0.2)
		m.RecordModelAttempt(ctx, "gemini-2.0-flash", "error")
		m.RecordGeocode(ctx, "gazetteer")
		m.RecordDegraded(ctx, "no_places")
		m.RecordTurn(ctx, "ask_budget")
	})
}

func TestRecordHelpers_Initialized(t *testing.T) {
	InitAppMetrics()
	m := Get()
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.RecordRecommendation(ctx, "success", 1.5)
		m.RecordGeocode(ctx, "geocoder")
	})
}
