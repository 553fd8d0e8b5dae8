package sync

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/config"
	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
	"github.com/ttbdata/ecfr-sync/internal/ecfr"
	"github.com/ttbdata/ecfr-sync/internal/hierarchy"
	"github.com/ttbdata/ecfr-sync/internal/storage"
	"github.com/ttbdata/ecfr-sync/internal/sync/writer"
	"github.com/ttbdata/ecfr-sync/internal/telemetry"
)

// Manager orchestrates the sync pipeline for the configured titles
type Manager interface {
	// SyncAll refreshes title metadata and syncs every configured title
	SyncAll(ctx context.Context) (*Result, error)

	// SyncTitle syncs a single title from already-fetched metadata
	SyncTitle(ctx context.Context, meta ecfr.TitleMeta) (*TitleResult, error)
}

// Result summarizes one SyncAll run
type Result struct {
	Titles []TitleResult
	Failed int
}

// TitleResult reports what happened to a single title
type TitleResult struct {
	TitleNumber int
	Synced      bool
	Reason      string
	Stats       *writer.Stats
	Err         error
}

type defaultManager struct {
	client       *ecfr.Client
	writer       writer.SyncWriter
	storage      storage.Manager
	querier      sqlc.Querier
	detector     *TitleChangeDetector
	checker      *AutomaticSyncChecker
	metrics      *telemetry.Metrics
	titleNumbers []int
	logger       *zap.Logger
}

// NewManager wires a manager from its collaborators. The automatic re-sync
// checker is enabled only when the config carries a sync policy interval.
func NewManager(
	cfg *config.Config,
	client *ecfr.Client,
	w writer.SyncWriter,
	store storage.Manager,
	querier sqlc.Querier,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) (Manager, error) {
	if client == nil || w == nil || store == nil || querier == nil {
		return nil, fmt.Errorf("client, writer, storage and querier are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var checker *AutomaticSyncChecker
	if cfg.SyncPolicy != nil && cfg.SyncPolicy.Interval != "" {
		interval, err := time.ParseDuration(cfg.SyncPolicy.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid sync interval %q: %w", cfg.SyncPolicy.Interval, err)
		}
		checker = NewAutomaticSyncChecker(interval)
	}

	return &defaultManager{
		client:       client,
		writer:       w,
		storage:      store,
		querier:      querier,
		detector:     NewTitleChangeDetector(querier),
		checker:      checker,
		metrics:      metrics,
		titleNumbers: cfg.TitleNumbers,
		logger:       logger,
	}, nil
}

// SyncAll fetches the title list, stores metadata for the configured titles,
// and syncs each one. A failing title does not stop the run; its error is
// recorded in the result.
func (m *defaultManager) SyncAll(ctx context.Context) (*Result, error) {
	titles, err := m.client.ListTitles(ctx, m.titleNumbers)
	if err != nil {
		m.countFetchError("titles")
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("no matching titles in upstream metadata")
	}

	if err := m.writer.StoreTitles(ctx, titles); err != nil {
		return nil, fmt.Errorf("failed to store title metadata: %w", err)
	}

	result := &Result{}
	for _, meta := range titles {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		tr, err := m.SyncTitle(ctx, meta)
		if err != nil {
			m.logger.Error("Title sync failed",
				zap.Int("title", meta.Number),
				zap.Error(err))
			tr = &TitleResult{TitleNumber: meta.Number, Err: err}
			result.Failed++
		}
		result.Titles = append(result.Titles, *tr)
	}

	return result, nil
}

// SyncTitle decides whether the title needs work, and if so runs the full
// fetch-flatten-merge pipeline for it
func (m *defaultManager) SyncTitle(ctx context.Context, meta ecfr.TitleMeta) (*TitleResult, error) {
	start := time.Now()

	should, reason, err := m.detector.ShouldSync(ctx, meta)
	if err != nil {
		return nil, err
	}

	if !should && reason == ReasonUpToDate {
		if state, stateErr := m.querier.GetTitleSync(ctx, int64(meta.Number)); stateErr == nil {
			if m.checker.IsIntervalElapsed(state.CompletedAt.String) {
				should, reason = true, ReasonIntervalElapsed
			}
		}
	}

	if !should {
		m.countSync("skipped")
		m.logger.Info("Skipping title",
			zap.Int("title", meta.Number),
			zap.String("reason", reason))
		return &TitleResult{TitleNumber: meta.Number, Reason: reason}, nil
	}

	m.logger.Info("Syncing title",
		zap.Int("title", meta.Number),
		zap.String("reason", reason))

	if err := m.writer.StartSync(ctx, meta.Number); err != nil {
		return nil, err
	}

	res, err := m.syncDetails(ctx, meta, reason)
	if err != nil {
		if failErr := m.writer.FailSync(ctx, meta.Number, err); failErr != nil {
			m.logger.Error("Failed to record sync failure",
				zap.Int("title", meta.Number),
				zap.Error(failErr))
		}
		m.countSync("failed")
		return nil, err
	}

	m.observeDuration(time.Since(start))
	return res, nil
}

func (m *defaultManager) syncDetails(ctx context.Context, meta ecfr.TitleMeta, reason string) (*TitleResult, error) {
	date := meta.LatestIssueDate
	if date == "" {
		date = meta.UpToDateAsOf
	}
	if date == "" {
		return nil, fmt.Errorf("title %d has no issue date to fetch against", meta.Number)
	}

	root, raw, err := m.client.FetchStructure(ctx, date, meta.Number)
	if err != nil {
		m.countFetchError("structure")
		return nil, err
	}
	hash := ecfr.Hash(raw)

	// When the structure document is byte-identical to the one seen by the
	// last completed sync, the stored details already match it. A previous
	// failure invalidates that shortcut.
	if reason != ReasonPreviousFailed {
		if state, stateErr := m.querier.GetTitleSync(ctx, int64(meta.Number)); stateErr == nil {
			if state.StructureHash.Valid && state.StructureHash.String == hash {
				if err := m.writer.MarkDetailsDownloaded(ctx, meta.Number); err != nil {
					return nil, err
				}
				if err := m.writer.CompleteSync(ctx, meta.Number, hash); err != nil {
					return nil, err
				}
				m.countSync("skipped")
				m.logger.Info("Structure unchanged, skipping merge",
					zap.Int("title", meta.Number))
				return &TitleResult{TitleNumber: meta.Number, Reason: ReasonStructureUnchanged}, nil
			}
		}
	}

	if err := m.storage.SaveStructure(ctx, meta.Number, raw); err != nil {
		return nil, err
	}

	details := titleDetails(hierarchy.Flatten(root))

	// Full text is best-effort: a missing or malformed XML document must not
	// block the structural merge.
	xmlData, err := m.client.FetchFullText(ctx, date, meta.Number)
	if err != nil {
		m.countFetchError("fulltext")
		m.logger.Warn("Full text unavailable, merging structure only",
			zap.Int("title", meta.Number),
			zap.Error(err))
	} else {
		divs, parseErr := hierarchy.ExtractDivTexts(xmlData)
		if parseErr != nil {
			m.logger.Warn("Failed to parse full text",
				zap.Int("title", meta.Number),
				zap.Error(parseErr))
		} else {
			matched := hierarchy.ApplyText(details, hierarchy.NewTextIndex(divs))
			m.logger.Debug("Applied regulation text",
				zap.Int("title", meta.Number),
				zap.Int("matched", matched))
		}
		if err := m.storage.SaveFullText(ctx, meta.Number, xmlData); err != nil {
			return nil, err
		}
	}

	if err := m.storage.SaveFlattened(ctx, meta.Number, details); err != nil {
		return nil, err
	}

	stats, err := m.writer.StoreTitleDetails(ctx, meta.Number, details)
	if err != nil {
		return nil, err
	}
	m.countRecords(stats)

	if err := m.writer.MarkDetailsDownloaded(ctx, meta.Number); err != nil {
		return nil, err
	}
	if err := m.writer.CompleteSync(ctx, meta.Number, hash); err != nil {
		return nil, err
	}

	m.countSync("complete")
	m.logger.Info("Title sync complete",
		zap.Int("title", meta.Number),
		zap.Int("inserted", stats.Inserted),
		zap.Int("updated", stats.Updated),
		zap.Int("unchanged", stats.Unchanged),
		zap.Int("deleted", stats.Deleted),
		zap.Int("skipped", stats.Skipped))

	return &TitleResult{
		TitleNumber: meta.Number,
		Synced:      true,
		Reason:      reason,
		Stats:       stats,
	}, nil
}

// titleDetails drops the title node itself from the flattened records. The
// title row lives in the titles table; only its descendants become details.
func titleDetails(records []hierarchy.Record) []hierarchy.Record {
	details := make([]hierarchy.Record, 0, len(records))
	for _, rec := range records {
		if rec.Type == hierarchy.TypeTitle {
			continue
		}
		details = append(details, rec)
	}
	return details
}

func (m *defaultManager) countSync(outcome string) {
	if m.metrics != nil {
		m.metrics.TitleSyncs.WithLabelValues(outcome).Inc()
	}
}

func (m *defaultManager) countFetchError(kind string) {
	if m.metrics != nil {
		m.metrics.FetchErrors.WithLabelValues(kind).Inc()
	}
}

func (m *defaultManager) countRecords(stats *writer.Stats) {
	if m.metrics == nil {
		return
	}
	m.metrics.DetailRecords.WithLabelValues("inserted").Add(float64(stats.Inserted))
	m.metrics.DetailRecords.WithLabelValues("updated").Add(float64(stats.Updated))
	m.metrics.DetailRecords.WithLabelValues("unchanged").Add(float64(stats.Unchanged))
	m.metrics.DetailRecords.WithLabelValues("deleted").Add(float64(stats.Deleted))
	m.metrics.DetailRecords.WithLabelValues("skipped").Add(float64(stats.Skipped))
}

func (m *defaultManager) observeDuration(d time.Duration) {
	if m.metrics != nil {
		m.metrics.SyncDuration.Observe(d.Seconds())
	}
}
