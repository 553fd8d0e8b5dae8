package sync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
	"github.com/ttbdata/ecfr-sync/internal/ecfr"
)

// Sync status values stored in title_syncs
const (
	StatusPending  = "pending"
	StatusSyncing  = "syncing"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Reasons reported for sync decisions
const (
	ReasonNeverSynced        = "never-synced"
	ReasonIssueDateAdvanced  = "issue-date-advanced"
	ReasonPreviousFailed     = "previous-failed"
	ReasonIntervalElapsed    = "interval-elapsed"
	ReasonStructureUnchanged = "structure-unchanged"
	ReasonUpToDate           = "up-to-date"
	ReasonReserved           = "reserved"
)

// TitleChangeDetector decides from stored state whether a title's details
// need to be fetched again
type TitleChangeDetector struct {
	querier sqlc.Querier
}

// NewTitleChangeDetector creates a detector reading state through the
// given querier
func NewTitleChangeDetector(querier sqlc.Querier) *TitleChangeDetector {
	return &TitleChangeDetector{querier: querier}
}

// ShouldSync reports whether the title identified by meta needs a sync,
// with the reason for the decision. A title needs a sync when it has never
// been downloaded, when its previous sync failed, or when the upstream
// issue date has advanced past the stored download date.
func (d *TitleChangeDetector) ShouldSync(ctx context.Context, meta ecfr.TitleMeta) (bool, string, error) {
	if meta.Reserved {
		return false, ReasonReserved, nil
	}

	title, err := d.querier.GetTitle(ctx, int64(meta.Number))
	if errors.Is(err, sql.ErrNoRows) {
		return true, ReasonNeverSynced, nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to load title %d: %w", meta.Number, err)
	}
	if !title.TitleDetailsDownloadDate.Valid {
		return true, ReasonNeverSynced, nil
	}

	state, err := d.querier.GetTitleSync(ctx, int64(meta.Number))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, "", fmt.Errorf("failed to load sync state for title %d: %w", meta.Number, err)
	}
	if err == nil && state.SyncStatus == StatusFailed {
		return true, ReasonPreviousFailed, nil
	}

	if issueDateAfter(meta.LatestIssueDate, title.TitleDetailsDownloadDate.String) {
		return true, ReasonIssueDateAdvanced, nil
	}

	return false, ReasonUpToDate, nil
}

// issueDateAfter reports whether the issue date (YYYY-MM-DD) falls after the
// date portion of a stored download timestamp. Both values sort
// lexicographically, so no parsing is needed.
func issueDateAfter(issueDate, downloadDate string) bool {
	if issueDate == "" {
		return false
	}
	if len(downloadDate) >= 10 {
		downloadDate = downloadDate[:10]
	}
	return issueDate > downloadDate
}

// AutomaticSyncChecker forces a periodic re-sync of titles whose upstream
// metadata has not moved, so local data recovers from out-of-band edits
type AutomaticSyncChecker struct {
	interval time.Duration
	now      func() time.Time
}

// NewAutomaticSyncChecker creates a checker with the given minimum interval.
// A zero interval disables periodic re-syncs.
func NewAutomaticSyncChecker(interval time.Duration) *AutomaticSyncChecker {
	return &AutomaticSyncChecker{interval: interval, now: time.Now}
}

// IsIntervalElapsed reports whether enough time has passed since the last
// completed sync. The timestamp uses the storage format; an unparsable or
// empty value counts as elapsed.
func (a *AutomaticSyncChecker) IsIntervalElapsed(lastCompletedAt string) bool {
	if a == nil || a.interval <= 0 {
		return false
	}
	if lastCompletedAt == "" {
		return true
	}
	completed, err := time.Parse("2006-01-02 15:04:05-07:00", lastCompletedAt)
	if err != nil {
		return true
	}
	return a.now().Sub(completed) >= a.interval
}
