// Package writer contains the SyncWriter interface and implementations
package writer

import (
	"context"
	"time"

	"github.com/ttbdata/ecfr-sync/internal/ecfr"
	"github.com/ttbdata/ecfr-sync/internal/hierarchy"
)

// Stats summarizes the outcome of merging one title's records
type Stats struct {
	Inserted  int
	Updated   int
	Unchanged int
	Deleted   int
	Skipped   int
}

//go:generate mockgen -destination=mocks/mock_writer.go -package=mocks github.com/ttbdata/ecfr-sync/internal/sync/writer SyncWriter

// SyncWriter persists sync results to durable storage
type SyncWriter interface {
	// StoreTitles upserts title metadata rows, preserving each title's
	// detail download date
	StoreTitles(ctx context.Context, titles []ecfr.TitleMeta) error

	// StoreTitleDetails merges flattened hierarchy records for one title
	// under at-most-one-row-per-reference semantics: new references are
	// inserted, changed rows updated, unchanged rows left untouched, and
	// rows whose reference no longer exists upstream deleted.
	StoreTitleDetails(ctx context.Context, titleNumber int, records []hierarchy.Record) (*Stats, error)

	// MarkDetailsDownloaded advances the title's detail download date
	MarkDetailsDownloaded(ctx context.Context, titleNumber int) error

	// StartSync records that a sync attempt for the title has begun
	StartSync(ctx context.Context, titleNumber int) error

	// CompleteSync records a successful sync with the structure hash it saw
	CompleteSync(ctx context.Context, titleNumber int, structureHash string) error

	// FailSync records a failed sync attempt with its error
	FailSync(ctx context.Context, titleNumber int, syncErr error) error
}

// Stored timestamps use a fixed US Eastern offset with seconds precision,
// matching the format already present in long-lived databases.
var easternZone = time.FixedZone("EST", -5*60*60)

// StandardTimestamp returns the current time formatted for storage,
// e.g. "2025-08-28 14:30:45-05:00"
func StandardTimestamp() string {
	return time.Now().In(easternZone).Format("2006-01-02 15:04:05-07:00")
}
