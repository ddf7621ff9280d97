package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"csa-console/internal/roster"
)

func TestDrafts_Sweep(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	d := NewDrafts()
	d.now = func() time.Time { return now }

	d.PutIfAbsent("old", roster.NewEditor(nil))
	now = now.Add(2 * time.Hour)
	d.PutIfAbsent("fresh", roster.NewEditor(nil))

	assert.Equal(t, 1, d.Sweep(now.Add(-time.Hour)))
	_, ok := d.Get("old")
	assert.False(t, ok)
	_, ok = d.Get("fresh")
	assert.True(t, ok)
}

func TestPinGuard(t *testing.T) {
	assert.NoError(t, NewPinGuard("8496").Check("8496"))
	assert.Error(t, NewPinGuard("8496").Check("849"))
	assert.Error(t, NewPinGuard("").Check(""))
}
