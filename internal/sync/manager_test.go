package sync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/config"
	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
	"github.com/ttbdata/ecfr-sync/internal/ecfr"
	"github.com/ttbdata/ecfr-sync/internal/storage"
	"github.com/ttbdata/ecfr-sync/internal/sync/writer"
	"github.com/ttbdata/ecfr-sync/internal/sync/writer/mocks"
	"github.com/ttbdata/ecfr-sync/internal/telemetry"
)

const testBaseURL = "https://ecfr.test"

const testTitlesJSON = `{
  "titles": [
    {
      "number": 27,
      "name": "Alcohol, Tobacco Products and Firearms",
      "latest_amended_on": "2025-07-28",
      "latest_issue_date": "2025-08-01",
      "up_to_date_as_of": "2025-08-28",
      "reserved": false
    },
    {
      "number": 35,
      "name": "Reserved",
      "reserved": true
    }
  ],
  "meta": {"date": "2025-08-28"}
}`

const testStructureJSON = `{
  "type": "title",
  "identifier": "27",
  "label": "Title 27 - Alcohol, Tobacco Products and Firearms",
  "children": [
    {
      "type": "chapter",
      "identifier": "I",
      "label": "Chapter I - Alcohol and Tobacco Tax and Trade Bureau",
      "children": [
        {
          "type": "part",
          "identifier": "5",
          "label": "Part 5 - Labeling of Distilled Spirits",
          "children": [
            {
              "type": "section",
              "identifier": "5.63",
              "label": "§ 5.63 Mandatory label information.",
              "children": []
            }
          ]
        }
      ]
    }
  ]
}`

const testFullXML = `<DIV1 N="27" TYPE="TITLE">
  <HEAD>Title 27 - Alcohol, Tobacco Products and Firearms</HEAD>
  <DIV3 N="I" TYPE="CHAPTER">
    <HEAD>Chapter I</HEAD>
    <DIV5 N="5" TYPE="PART">
      <HEAD>Part 5</HEAD>
      <DIV8 N="5.63" TYPE="SECTION">
        <HEAD>&#xA7; 5.63 Mandatory label information.</HEAD>
        <P>Mandatory statements must be readily legible.</P>
      </DIV8>
    </DIV5>
  </DIV3>
</DIV1>`

// stubHTTP serves canned responses keyed by full URL
type stubHTTP struct {
	responses map[string][]byte
	errs      map[string]error
}

func (s *stubHTTP) Get(_ context.Context, url string) ([]byte, error) {
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	if body, ok := s.responses[url]; ok {
		return body, nil
	}
	return nil, fmt.Errorf("unexpected request: %s", url)
}

func newStubHTTP() *stubHTTP {
	return &stubHTTP{
		responses: map[string][]byte{
			testBaseURL + "/api/versioner/v1/titles":                             []byte(testTitlesJSON),
			testBaseURL + "/api/versioner/v1/structure/2025-08-01/title-27.json": []byte(testStructureJSON),
			testBaseURL + "/api/versioner/v1/full/2025-08-01/title-27.xml":       []byte(testFullXML),
		},
		errs: map[string]error{},
	}
}

type testEnv struct {
	manager Manager
	db      *sql.DB
	queries *sqlc.Queries
	dataDir string
}

func newTestEnv(t *testing.T, stub *stubHTTP) *testEnv {
	t.Helper()

	db, queries := newTestDB(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	cfg := &config.Config{
		TitleNumbers: []int{27, 35},
		DataDir:      dataDir,
	}

	w, err := writer.NewDBSyncWriter(db, zap.NewNop())
	require.NoError(t, err)

	m, err := NewManager(
		cfg,
		ecfr.NewClient(stub, testBaseURL, zap.NewNop()),
		w,
		storage.NewFileManager(dataDir),
		queries,
		telemetry.NewMetrics(),
		zap.NewNop(),
	)
	require.NoError(t, err)

	return &testEnv{
		manager: m,
		db:      db,
		queries: queries,
		dataDir: dataDir,
	}
}

func resultFor(t *testing.T, result *Result, titleNumber int) TitleResult {
	t.Helper()
	for _, tr := range result.Titles {
		if tr.TitleNumber == titleNumber {
			return tr
		}
	}
	t.Fatalf("no result for title %d", titleNumber)
	return TitleResult{}
}

func TestSyncAllFirstRun(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, newStubHTTP())
	ctx := context.Background()

	result, err := env.manager.SyncAll(ctx)
	require.NoError(t, err)
	require.Len(t, result.Titles, 2)
	assert.Equal(t, 0, result.Failed)

	reserved := resultFor(t, result, 35)
	assert.False(t, reserved.Synced)
	assert.Equal(t, ReasonReserved, reserved.Reason)

	synced := resultFor(t, result, 27)
	assert.True(t, synced.Synced)
	assert.Equal(t, ReasonNeverSynced, synced.Reason)
	require.NotNil(t, synced.Stats)
	assert.Equal(t, 3, synced.Stats.Inserted)

	// Title node itself stays out of title_details.
	count, err := env.queries.CountTitleDetailsByTitle(ctx, 27)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	section, err := env.queries.GetTitleDetail(ctx, "27 CFR §5.63")
	require.NoError(t, err)
	assert.True(t, section.IsLeafNode)
	assert.Contains(t, section.RegText.String, "readily legible")
	assert.True(t, section.RegTextDownloadDate.Valid)

	title, err := env.queries.GetTitle(ctx, 27)
	require.NoError(t, err)
	assert.True(t, title.TitleDetailsDownloadDate.Valid)

	state, err := env.queries.GetTitleSync(ctx, 27)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, state.SyncStatus)
	assert.True(t, state.StructureHash.Valid)

	// Raw documents land in the cache directory.
	for _, name := range []string{storage.StructureFileName, storage.FlattenedFileName, storage.FullTextFileName} {
		_, err := os.Stat(filepath.Join(env.dataDir, "ecfr_title-27", name))
		assert.NoError(t, err, name)
	}
}

func TestSyncAllSecondRunUpToDate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, newStubHTTP())
	ctx := context.Background()

	_, err := env.manager.SyncAll(ctx)
	require.NoError(t, err)

	result, err := env.manager.SyncAll(ctx)
	require.NoError(t, err)

	second := resultFor(t, result, 27)
	assert.False(t, second.Synced)
	assert.Equal(t, ReasonUpToDate, second.Reason)
}

func TestSyncTitleStructureUnchangedSkipsMerge(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, newStubHTTP())
	ctx := context.Background()

	_, err := env.manager.SyncAll(ctx)
	require.NoError(t, err)

	// Make the detector fire again without changing the upstream document.
	_, err = env.db.ExecContext(ctx,
		`UPDATE titles SET title_details_download_date = '2020-01-01 00:00:00-05:00' WHERE title_number = 27`)
	require.NoError(t, err)

	meta := ecfr.TitleMeta{
		Number:          27,
		Name:            "Alcohol, Tobacco Products and Firearms",
		LatestIssueDate: "2025-08-01",
		UpToDateAsOf:    "2025-08-28",
	}
	tr, err := env.manager.SyncTitle(ctx, meta)
	require.NoError(t, err)

	assert.False(t, tr.Synced)
	assert.Equal(t, ReasonStructureUnchanged, tr.Reason)

	count, err := env.queries.CountTitleDetailsByTitle(ctx, 27)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Bookkeeping still advances so the detector stops firing.
	title, err := env.queries.GetTitle(ctx, 27)
	require.NoError(t, err)
	assert.NotEqual(t, "2020-01-01 00:00:00-05:00", title.TitleDetailsDownloadDate.String)
}

func TestSyncTitleFullTextUnavailable(t *testing.T) {
	t.Parallel()

	stub := newStubHTTP()
	stub.errs[testBaseURL+"/api/versioner/v1/full/2025-08-01/title-27.xml"] = errors.New("504 gateway timeout")

	env := newTestEnv(t, stub)
	ctx := context.Background()

	result, err := env.manager.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Failed)

	synced := resultFor(t, result, 27)
	assert.True(t, synced.Synced)
	require.NotNil(t, synced.Stats)
	assert.Equal(t, 3, synced.Stats.Inserted)

	// Structure made it in; text did not.
	section, err := env.queries.GetTitleDetail(ctx, "27 CFR §5.63")
	require.NoError(t, err)
	assert.False(t, section.RegText.Valid)
	assert.False(t, section.RegTextDownloadDate.Valid)
}

func TestSyncTitleStructureFetchFailure(t *testing.T) {
	t.Parallel()

	stub := newStubHTTP()
	stub.errs[testBaseURL+"/api/versioner/v1/structure/2025-08-01/title-27.json"] = errors.New("503 service unavailable")

	_, queries := newTestDB(t)
	dataDir := t.TempDir()

	ctrl := gomock.NewController(t)
	mockWriter := mocks.NewMockSyncWriter(ctrl)
	mockWriter.EXPECT().StartSync(gomock.Any(), 27).Return(nil)
	mockWriter.EXPECT().FailSync(gomock.Any(), 27, gomock.Any()).Return(nil)

	m, err := NewManager(
		&config.Config{TitleNumbers: []int{27}, DataDir: dataDir},
		ecfr.NewClient(stub, testBaseURL, zap.NewNop()),
		mockWriter,
		storage.NewFileManager(dataDir),
		queries,
		nil,
		zap.NewNop(),
	)
	require.NoError(t, err)

	meta := ecfr.TitleMeta{Number: 27, LatestIssueDate: "2025-08-01"}
	_, err = m.SyncTitle(context.Background(), meta)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestSyncTitleIntervalElapsedForcesRerun(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, newStubHTTP())
	ctx := context.Background()

	_, err := env.manager.SyncAll(ctx)
	require.NoError(t, err)

	// Rebuild the manager with a tiny interval; the first run's completion
	// timestamp is already in the past relative to it.
	dm := env.manager.(*defaultManager)
	dm.checker = NewAutomaticSyncChecker(1)

	meta := ecfr.TitleMeta{
		Number:          27,
		Name:            "Alcohol, Tobacco Products and Firearms",
		LatestIssueDate: "2025-08-01",
		UpToDateAsOf:    "2025-08-28",
	}
	tr, err := env.manager.SyncTitle(ctx, meta)
	require.NoError(t, err)

	// The interval forces the attempt; the unchanged structure still
	// short-circuits the merge.
	assert.Equal(t, ReasonStructureUnchanged, tr.Reason)
}
