package writer

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
	"github.com/ttbdata/ecfr-sync/internal/ecfr"
	"github.com/ttbdata/ecfr-sync/internal/hierarchy"
)

// dbSyncWriter is a SyncWriter implementation that persists data to the
// embedded database
type dbSyncWriter struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDBSyncWriter creates a new dbSyncWriter on the given database handle.
// The caller is responsible for closing the handle when done.
func NewDBSyncWriter(db *sql.DB, logger *zap.Logger) (SyncWriter, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dbSyncWriter{db: db, logger: logger}, nil
}

// StoreTitles upserts title metadata rows inside a single transaction. The
// upsert's update clause excludes title_details_download_date, so re-storing
// metadata never clobbers a title's download bookkeeping.
func (d *dbSyncWriter) StoreTitles(ctx context.Context, titles []ecfr.TitleMeta) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	querier := sqlc.New(tx)
	for _, t := range titles {
		err := querier.UpsertTitle(ctx, sqlc.UpsertTitleParams{
			TitleNumber:     int64(t.Number),
			TitleLabel:      nullString(t.Name),
			LatestIssueDate: nullString(t.LatestIssueDate),
			LatestAmendedOn: nullString(t.LatestAmendedOn),
			UpToDateAsOf:    nullString(t.UpToDateAsOf),
			Reserved:        t.Reserved,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert title %d: %w", t.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// StoreTitleDetails merges flattened records for one title.
//
// The merge runs in a single transaction:
//  1. Load all existing rows for the title and key them by cfr_ref.
//  2. Insert records with unknown references; update rows whose content
//     differs; count rows with identical content as unchanged without
//     touching them, preserving their text download dates.
//  3. Delete rows whose reference was not produced by this sync.
//
// Records with an empty reference, or a reference already seen in the batch,
// are skipped and counted.
func (d *dbSyncWriter) StoreTitleDetails(
	ctx context.Context, titleNumber int, records []hierarchy.Record,
) (*Stats, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	querier := sqlc.New(tx)

	existingRows, err := querier.ListTitleDetailsByTitle(ctx, int64(titleNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to load existing details: %w", err)
	}
	existing := make(map[string]sqlc.TitleDetail, len(existingRows))
	for _, row := range existingRows {
		existing[row.CfrRef] = row
	}

	stats := &Stats{}
	now := StandardTimestamp()
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if rec.CFRRef == "" {
			d.logger.Warn("Skipping record with empty reference",
				zap.String("type", rec.Type),
				zap.Int("level", rec.Level))
			stats.Skipped++
			continue
		}
		if seen[rec.CFRRef] {
			d.logger.Warn("Skipping duplicate reference in batch",
				zap.String("cfrRef", rec.CFRRef))
			stats.Skipped++
			continue
		}
		seen[rec.CFRRef] = true

		current, exists := existing[rec.CFRRef]
		if !exists {
			if err := querier.InsertTitleDetail(ctx, insertParams(titleNumber, rec, now)); err != nil {
				return nil, fmt.Errorf("failed to insert %s: %w", rec.CFRRef, err)
			}
			stats.Inserted++
			continue
		}

		textChanged := rec.RegText != "" && rec.RegText != current.RegText.String
		if !detailChanged(current, rec) && !textChanged {
			stats.Unchanged++
			continue
		}

		if err := querier.UpdateTitleDetail(ctx, updateParams(titleNumber, rec, current, textChanged, now)); err != nil {
			return nil, fmt.Errorf("failed to update %s: %w", rec.CFRRef, err)
		}
		stats.Updated++
	}

	// Remove rows whose reference no longer exists upstream
	for ref := range existing {
		if seen[ref] {
			continue
		}
		if err := querier.DeleteTitleDetail(ctx, ref); err != nil {
			return nil, fmt.Errorf("failed to delete orphaned %s: %w", ref, err)
		}
		stats.Deleted++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stats, nil
}

// MarkDetailsDownloaded advances the title's detail download date
func (d *dbSyncWriter) MarkDetailsDownloaded(ctx context.Context, titleNumber int) error {
	err := sqlc.New(d.db).SetTitleDetailsDownloadDate(ctx, sqlc.SetTitleDetailsDownloadDateParams{
		TitleDetailsDownloadDate: nullString(StandardTimestamp()),
		TitleNumber:              int64(titleNumber),
	})
	if err != nil {
		return fmt.Errorf("failed to set download date for title %d: %w", titleNumber, err)
	}
	return nil
}

// StartSync records that a sync attempt for the title has begun
func (d *dbSyncWriter) StartSync(ctx context.Context, titleNumber int) error {
	err := sqlc.New(d.db).StartTitleSync(ctx, sqlc.StartTitleSyncParams{
		TitleNumber: int64(titleNumber),
		StartedAt:   nullString(StandardTimestamp()),
	})
	if err != nil {
		return fmt.Errorf("failed to start sync for title %d: %w", titleNumber, err)
	}
	return nil
}

// CompleteSync records a successful sync with the structure hash it saw
func (d *dbSyncWriter) CompleteSync(ctx context.Context, titleNumber int, structureHash string) error {
	err := sqlc.New(d.db).CompleteTitleSync(ctx, sqlc.CompleteTitleSyncParams{
		StructureHash: nullString(structureHash),
		CompletedAt:   nullString(StandardTimestamp()),
		TitleNumber:   int64(titleNumber),
	})
	if err != nil {
		return fmt.Errorf("failed to complete sync for title %d: %w", titleNumber, err)
	}
	return nil
}

// FailSync records a failed sync attempt with its error
func (d *dbSyncWriter) FailSync(ctx context.Context, titleNumber int, syncErr error) error {
	msg := ""
	if syncErr != nil {
		msg = syncErr.Error()
	}
	err := sqlc.New(d.db).FailTitleSync(ctx, sqlc.FailTitleSyncParams{
		CompletedAt: nullString(StandardTimestamp()),
		ErrorMsg:    nullString(msg),
		TitleNumber: int64(titleNumber),
	})
	if err != nil {
		return fmt.Errorf("failed to record sync failure for title %d: %w", titleNumber, err)
	}
	return nil
}

// detailChanged reports whether a record's structural content differs from
// the stored row. Text is compared separately because an empty fetched text
// must not erase stored text.
func detailChanged(current sqlc.TitleDetail, rec hierarchy.Record) bool {
	return current.HierarchyType != rec.Type ||
		current.HierarchyLevel != int64(rec.Level) ||
		current.IsLeafNode != rec.IsLeaf ||
		current.Reserved != rec.Reserved ||
		current.OrderID != int64(rec.OrderID) ||
		current.ChapterID.String != rec.ChapterID ||
		current.ChapterLabel.String != rec.ChapterLabel ||
		current.SubchapterID.String != rec.SubchapterID ||
		current.SubchapterLabel.String != rec.SubchapterLabel ||
		current.PartID.String != rec.PartID ||
		current.PartLabel.String != rec.PartLabel ||
		current.SubpartID.String != rec.SubpartID ||
		current.SubpartLabel.String != rec.SubpartLabel ||
		current.SectionID.String != rec.SectionID ||
		current.SectionLabel.String != rec.SectionLabel ||
		current.AppendixID.String != rec.AppendixID ||
		current.AppendixLabel.String != rec.AppendixLabel ||
		current.SubjectGrpID.String != rec.SubjectGroupID ||
		current.SubjectGrpLabel.String != rec.SubjectGroupLabel
}

func insertParams(titleNumber int, rec hierarchy.Record, now string) sqlc.InsertTitleDetailParams {
	p := sqlc.InsertTitleDetailParams{
		CfrRef:          rec.CFRRef,
		TitleNumber:     int64(titleNumber),
		HierarchyType:   rec.Type,
		HierarchyLevel:  int64(rec.Level),
		IsLeafNode:      rec.IsLeaf,
		Reserved:        rec.Reserved,
		OrderID:         int64(rec.OrderID),
		ChapterID:       nullString(rec.ChapterID),
		ChapterLabel:    nullString(rec.ChapterLabel),
		SubchapterID:    nullString(rec.SubchapterID),
		SubchapterLabel: nullString(rec.SubchapterLabel),
		PartID:          nullString(rec.PartID),
		PartLabel:       nullString(rec.PartLabel),
		SubpartID:       nullString(rec.SubpartID),
		SubpartLabel:    nullString(rec.SubpartLabel),
		SectionID:       nullString(rec.SectionID),
		SectionLabel:    nullString(rec.SectionLabel),
		AppendixID:      nullString(rec.AppendixID),
		AppendixLabel:   nullString(rec.AppendixLabel),
		SubjectGrpID:    nullString(rec.SubjectGroupID),
		SubjectGrpLabel: nullString(rec.SubjectGroupLabel),
	}
	if rec.RegText != "" {
		p.RegText = nullString(rec.RegText)
		p.RegTextDownloadDate = nullString(now)
	}
	return p
}

func updateParams(
	titleNumber int, rec hierarchy.Record, current sqlc.TitleDetail, textChanged bool, now string,
) sqlc.UpdateTitleDetailParams {
	p := sqlc.UpdateTitleDetailParams{
		TitleNumber:     int64(titleNumber),
		HierarchyType:   rec.Type,
		HierarchyLevel:  int64(rec.Level),
		IsLeafNode:      rec.IsLeaf,
		Reserved:        rec.Reserved,
		OrderID:         int64(rec.OrderID),
		ChapterID:       nullString(rec.ChapterID),
		ChapterLabel:    nullString(rec.ChapterLabel),
		SubchapterID:    nullString(rec.SubchapterID),
		SubchapterLabel: nullString(rec.SubchapterLabel),
		PartID:          nullString(rec.PartID),
		PartLabel:       nullString(rec.PartLabel),
		SubpartID:       nullString(rec.SubpartID),
		SubpartLabel:    nullString(rec.SubpartLabel),
		SectionID:       nullString(rec.SectionID),
		SectionLabel:    nullString(rec.SectionLabel),
		AppendixID:      nullString(rec.AppendixID),
		AppendixLabel:   nullString(rec.AppendixLabel),
		SubjectGrpID:    nullString(rec.SubjectGroupID),
		SubjectGrpLabel: nullString(rec.SubjectGroupLabel),

		// Stored text survives a sync that fetched no text for the node
		RegText:             current.RegText,
		RegTextDownloadDate: current.RegTextDownloadDate,

		CfrRef: rec.CFRRef,
	}
	if textChanged {
		p.RegText = nullString(rec.RegText)
		p.RegTextDownloadDate = nullString(now)
	}
	return p
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
