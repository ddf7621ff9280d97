package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csa-console/internal/config"
)

type fakePruner struct {
	before time.Time
	n      int64
	err    error
	calls  int
}

func (f *fakePruner) DeleteReportsBefore(_ context.Context, before time.Time) (int64, error) {
	f.calls++
	f.before = before
	return f.n, f.err
}

type fakeSweeper struct {
	before time.Time
}

func (f *fakeSweeper) Sweep(before time.Time) int {
	f.before = before
	return 0
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRetention_Run(t *testing.T) {
	now := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	pruner := &fakePruner{n: 4}
	sweeper := &fakeSweeper{}

	r := NewRetention(config.Config{ReportRetention: 48 * time.Hour, SessionIdleTimeout: time.Hour}, pruner, sweeper, discard)
	r.now = func() time.Time { return now }

	r.Run(context.Background())

	assert.Equal(t, 1, pruner.calls)
	assert.Equal(t, now.Add(-48*time.Hour), pruner.before)
	assert.Equal(t, now.Add(-time.Hour), sweeper.before)
}

func TestRetention_NoDatabase(t *testing.T) {
	sweeper := &fakeSweeper{}
	r := NewRetention(config.Config{}, nil, sweeper, discard)

	assert.NotPanics(t, func() { r.Run(context.Background()) })
	assert.False(t, sweeper.before.IsZero())
	assert.Equal(t, 30*24*time.Hour, r.keep)
}

func TestRetention_PrunerError(t *testing.T) {
	pruner := &fakePruner{err: errors.New("db down")}
	r := NewRetention(config.Config{}, pruner, nil, discard)

	r.Run(context.Background())
	assert.Equal(t, 1, pruner.calls)
}

func TestStartRetentionJob_BadSchedule(t *testing.T) {
	_, err := StartRetentionJob(context.Background(), config.Config{RetentionSchedule: "every tuesday"}, nil, nil, discard)
	require.Error(t, err)
}

func TestStartRetentionJob_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c, err := StartRetentionJob(ctx, config.Config{RetentionSchedule: "@hourly"}, nil, &fakeSweeper{}, discard)
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)
	cancel()
}
