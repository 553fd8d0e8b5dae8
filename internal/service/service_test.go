package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Register sqlite driver

	"github.com/ttbdata/ecfr-sync/database"
	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
)

func newTestService(t *testing.T) (*Service, *sqlc.Queries) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	m, err := database.NewFromDBPath(dbPath)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	queries := sqlc.New(db)
	return New(queries, zap.NewNop()), queries
}

func seedData(t *testing.T, queries *sqlc.Queries) {
	t.Helper()
	ctx := context.Background()

	err := queries.UpsertTitle(ctx, sqlc.UpsertTitleParams{
		TitleNumber:     27,
		TitleLabel:      sql.NullString{String: "Alcohol, Tobacco Products and Firearms", Valid: true},
		LatestIssueDate: sql.NullString{String: "2025-08-01", Valid: true},
	})
	require.NoError(t, err)

	details := []sqlc.InsertTitleDetailParams{
		{
			CfrRef:         "27 CFR chI",
			TitleNumber:    27,
			HierarchyType:  "chapter",
			HierarchyLevel: 1,
			OrderID:        1,
			ChapterID:      sql.NullString{String: "I", Valid: true},
		},
		{
			CfrRef:         "27 CFR §5.63",
			TitleNumber:    27,
			HierarchyType:  "section",
			HierarchyLevel: 2,
			OrderID:        2,
			IsLeafNode:     true,
			ChapterID:      sql.NullString{String: "I", Valid: true},
			SectionID:      sql.NullString{String: "5.63", Valid: true},
			RegText:        sql.NullString{String: "Mandatory statements must be legible.", Valid: true},
		},
	}
	for _, d := range details {
		require.NoError(t, queries.InsertTitleDetail(ctx, d))
	}

	require.NoError(t, queries.StartTitleSync(ctx, sqlc.StartTitleSyncParams{
		TitleNumber: 27,
		StartedAt:   sql.NullString{String: "2025-08-28 10:00:00-05:00", Valid: true},
	}))
	require.NoError(t, queries.CompleteTitleSync(ctx, sqlc.CompleteTitleSyncParams{
		StructureHash: sql.NullString{String: "abc123", Valid: true},
		CompletedAt:   sql.NullString{String: "2025-08-28 10:01:00-05:00", Valid: true},
		TitleNumber:   27,
	}))
}

func TestListTitles(t *testing.T) {
	t.Parallel()

	svc, queries := newTestService(t)
	seedData(t, queries)

	titles, err := svc.ListTitles(context.Background())
	require.NoError(t, err)
	require.Len(t, titles, 1)

	assert.Equal(t, 27, titles[0].Number)
	require.NotNil(t, titles[0].Label)
	assert.Equal(t, "Alcohol, Tobacco Products and Firearms", *titles[0].Label)
	assert.Nil(t, titles[0].DetailsDownloaded)
}

func TestGetTitleNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.GetTitle(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNodes(t *testing.T) {
	t.Parallel()

	svc, queries := newTestService(t)
	seedData(t, queries)
	ctx := context.Background()

	all, err := svc.ListNodes(ctx, 27, NodeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "27 CFR chI", all[0].CFRRef, "nodes come back in document order")

	leaves, err := svc.ListNodes(ctx, 27, NodeFilter{LeafOnly: true})
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "27 CFR §5.63", leaves[0].CFRRef)

	sections, err := svc.ListNodes(ctx, 27, NodeFilter{Type: "section"})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.NotNil(t, sections[0].RegText)
	assert.Contains(t, *sections[0].RegText, "legible")
}

func TestGetNode(t *testing.T) {
	t.Parallel()

	svc, queries := newTestService(t)
	seedData(t, queries)
	ctx := context.Background()

	node, err := svc.GetNode(ctx, "27 CFR §5.63")
	require.NoError(t, err)
	assert.Equal(t, "section", node.Type)
	assert.True(t, node.IsLeaf)

	_, err = svc.GetNode(ctx, "27 CFR §99.99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSyncs(t *testing.T) {
	t.Parallel()

	svc, queries := newTestService(t)
	seedData(t, queries)

	syncs, err := svc.ListSyncs(context.Background())
	require.NoError(t, err)
	require.Len(t, syncs, 1)

	assert.Equal(t, 27, syncs[0].TitleNumber)
	assert.Equal(t, "complete", syncs[0].Status)
	require.NotNil(t, syncs[0].StructureHash)
	assert.Equal(t, "abc123", *syncs[0].StructureHash)
	assert.Nil(t, syncs[0].Error)
}
