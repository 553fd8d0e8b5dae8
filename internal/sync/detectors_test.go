package sync

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // Register sqlite driver

	"github.com/ttbdata/ecfr-sync/database"
	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
	"github.com/ttbdata/ecfr-sync/internal/ecfr"
)

func newTestDB(t *testing.T) (*sql.DB, *sqlc.Queries) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	m, err := database.NewFromDBPath(dbPath)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return db, sqlc.New(db)
}

func seedTitle(t *testing.T, queries *sqlc.Queries, number int64, downloadDate string) {
	t.Helper()
	ctx := context.Background()
	err := queries.UpsertTitle(ctx, sqlc.UpsertTitleParams{
		TitleNumber:     number,
		TitleLabel:      sql.NullString{String: "Alcohol, Tobacco Products and Firearms", Valid: true},
		LatestIssueDate: sql.NullString{String: "2025-08-01", Valid: true},
	})
	require.NoError(t, err)
	if downloadDate != "" {
		err = queries.SetTitleDetailsDownloadDate(ctx, sqlc.SetTitleDetailsDownloadDateParams{
			TitleDetailsDownloadDate: sql.NullString{String: downloadDate, Valid: true},
			TitleNumber:              number,
		})
		require.NoError(t, err)
	}
}

func TestShouldSync(t *testing.T) {
	t.Parallel()

	meta := func(issueDate string) ecfr.TitleMeta {
		return ecfr.TitleMeta{Number: 27, LatestIssueDate: issueDate}
	}

	tests := []struct {
		name       string
		seed       func(t *testing.T, queries *sqlc.Queries)
		meta       ecfr.TitleMeta
		wantSync   bool
		wantReason string
	}{
		{
			name:       "reserved title never syncs",
			meta:       ecfr.TitleMeta{Number: 35, Reserved: true},
			wantSync:   false,
			wantReason: ReasonReserved,
		},
		{
			name:       "unknown title",
			meta:       meta("2025-08-01"),
			wantSync:   true,
			wantReason: ReasonNeverSynced,
		},
		{
			name: "known title without download date",
			seed: func(t *testing.T, queries *sqlc.Queries) {
				seedTitle(t, queries, 27, "")
			},
			meta:       meta("2025-08-01"),
			wantSync:   true,
			wantReason: ReasonNeverSynced,
		},
		{
			name: "issue date advanced past download date",
			seed: func(t *testing.T, queries *sqlc.Queries) {
				seedTitle(t, queries, 27, "2025-07-15 10:00:00-05:00")
			},
			meta:       meta("2025-08-01"),
			wantSync:   true,
			wantReason: ReasonIssueDateAdvanced,
		},
		{
			name: "issue date same day as download",
			seed: func(t *testing.T, queries *sqlc.Queries) {
				seedTitle(t, queries, 27, "2025-08-01 10:00:00-05:00")
			},
			meta:       meta("2025-08-01"),
			wantSync:   false,
			wantReason: ReasonUpToDate,
		},
		{
			name: "issue date older than download",
			seed: func(t *testing.T, queries *sqlc.Queries) {
				seedTitle(t, queries, 27, "2025-08-20 10:00:00-05:00")
			},
			meta:       meta("2025-08-01"),
			wantSync:   false,
			wantReason: ReasonUpToDate,
		},
		{
			name: "previous sync failed",
			seed: func(t *testing.T, queries *sqlc.Queries) {
				ctx := context.Background()
				seedTitle(t, queries, 27, "2025-08-20 10:00:00-05:00")
				require.NoError(t, queries.StartTitleSync(ctx, sqlc.StartTitleSyncParams{
					TitleNumber: 27,
					StartedAt:   sql.NullString{String: "2025-08-20 10:00:00-05:00", Valid: true},
				}))
				require.NoError(t, queries.FailTitleSync(ctx, sqlc.FailTitleSyncParams{
					ErrorMsg:    sql.NullString{String: "boom", Valid: true},
					TitleNumber: 27,
				}))
			},
			meta:       meta("2025-08-01"),
			wantSync:   true,
			wantReason: ReasonPreviousFailed,
		},
		{
			name: "missing issue date",
			seed: func(t *testing.T, queries *sqlc.Queries) {
				seedTitle(t, queries, 27, "2025-08-01 10:00:00-05:00")
			},
			meta:       meta(""),
			wantSync:   false,
			wantReason: ReasonUpToDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, queries := newTestDB(t)
			if tt.seed != nil {
				tt.seed(t, queries)
			}

			detector := NewTitleChangeDetector(queries)
			got, reason, err := detector.ShouldSync(context.Background(), tt.meta)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSync, got)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestAutomaticSyncChecker(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 28, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))

	tests := []struct {
		name        string
		interval    time.Duration
		completedAt string
		want        bool
	}{
		{name: "disabled", interval: 0, completedAt: "2020-01-01 00:00:00-05:00", want: false},
		{name: "interval elapsed", interval: 24 * time.Hour, completedAt: "2025-08-26 12:00:00-05:00", want: true},
		{name: "within interval", interval: 24 * time.Hour, completedAt: "2025-08-28 06:00:00-05:00", want: false},
		{name: "no prior completion", interval: 24 * time.Hour, completedAt: "", want: true},
		{name: "unparsable timestamp", interval: 24 * time.Hour, completedAt: "not-a-time", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := NewAutomaticSyncChecker(tt.interval)
			checker.now = func() time.Time { return now }
			assert.Equal(t, tt.want, checker.IsIntervalElapsed(tt.completedAt))
		})
	}
}

func TestAutomaticSyncCheckerNilReceiver(t *testing.T) {
	t.Parallel()

	var checker *AutomaticSyncChecker
	assert.False(t, checker.IsIntervalElapsed(""))
}
