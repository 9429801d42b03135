package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
)

func TestLoad_CorruptTimestamps(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		column string
	}{
		{"requested_at", `UPDATE leave_requests SET requested_at = 'yesterday' WHERE id = 'r1'`, "requested_at"},
		{"reviewed_at", `UPDATE leave_requests SET reviewed_at = '11/12/2024' WHERE id = 'r2'`, "reviewed_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN: A seeded store with one timestamp overwritten
			store, err := New()
			require.NoError(t, err)
			defer store.Close()

			ctx := context.Background()
			require.NoError(t, store.Reset(ctx, seed.Demo()))
			_, err = store.db.ExecContext(ctx, tt.query)
			require.NoError(t, err)

			// WHEN / THEN: Load fails instead of returning a zero time
			_, err = store.Load(ctx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.column)

			// AND: Update refuses to run over the bad row
			called := false
			err = store.Update(ctx, func(*hrms.Snapshot) error { called = true; return nil })
			assert.Error(t, err)
			assert.False(t, called)
		})
	}
}

func TestParseTime(t *testing.T) {
	ts, err := parseTime("2024-12-11T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())

	_, err = parseTime("")
	assert.Error(t, err)
}
