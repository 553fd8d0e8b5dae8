// Package service exposes read operations over synced regulation data for
// the HTTP API
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
)

// ErrNotFound indicates the requested row does not exist
var ErrNotFound = errors.New("not found")

// Title is the API representation of a tracked title
type Title struct {
	Number            int     `json:"number"`
	Label             *string `json:"label,omitempty"`
	LatestIssueDate   *string `json:"latest_issue_date,omitempty"`
	LatestAmendedOn   *string `json:"latest_amended_on,omitempty"`
	UpToDateAsOf      *string `json:"up_to_date_as_of,omitempty"`
	Reserved          bool    `json:"reserved"`
	DetailsDownloaded *string `json:"details_downloaded_at,omitempty"`
}

// Node is the API representation of one flattened hierarchy row
type Node struct {
	CFRRef            string  `json:"cfr_ref"`
	TitleNumber       int     `json:"title_number"`
	Type              string  `json:"type"`
	Level             int     `json:"level"`
	OrderID           int     `json:"order_id"`
	IsLeaf            bool    `json:"is_leaf"`
	Reserved          bool    `json:"reserved"`
	ChapterID         *string `json:"chapter_id,omitempty"`
	ChapterLabel      *string `json:"chapter_label,omitempty"`
	SubchapterID      *string `json:"subchapter_id,omitempty"`
	SubchapterLabel   *string `json:"subchapter_label,omitempty"`
	PartID            *string `json:"part_id,omitempty"`
	PartLabel         *string `json:"part_label,omitempty"`
	SubpartID         *string `json:"subpart_id,omitempty"`
	SubpartLabel      *string `json:"subpart_label,omitempty"`
	SectionID         *string `json:"section_id,omitempty"`
	SectionLabel      *string `json:"section_label,omitempty"`
	AppendixID        *string `json:"appendix_id,omitempty"`
	AppendixLabel     *string `json:"appendix_label,omitempty"`
	SubjectGroupID    *string `json:"subject_group_id,omitempty"`
	SubjectGroupLabel *string `json:"subject_group_label,omitempty"`
	RegText           *string `json:"reg_text,omitempty"`
	TextDownloaded    *string `json:"text_downloaded_at,omitempty"`
}

// SyncStatus is the API representation of a title's sync state
type SyncStatus struct {
	TitleNumber   int     `json:"title_number"`
	Status        string  `json:"status"`
	StructureHash *string `json:"structure_hash,omitempty"`
	StartedAt     *string `json:"started_at,omitempty"`
	CompletedAt   *string `json:"completed_at,omitempty"`
	Error         *string `json:"error,omitempty"`
}

// NodeFilter narrows ListNodes results
type NodeFilter struct {
	// Type restricts results to one hierarchy type, e.g. "section"
	Type string

	// LeafOnly restricts results to leaf nodes
	LeafOnly bool
}

// Service answers read queries against the synced database
type Service struct {
	querier sqlc.Querier
	logger  *zap.Logger
}

// New creates a service reading through the given querier
func New(querier sqlc.Querier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{querier: querier, logger: logger}
}

// ListTitles returns all tracked titles ordered by number
func (s *Service) ListTitles(ctx context.Context) ([]Title, error) {
	rows, err := s.querier.ListTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}
	titles := make([]Title, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, titleFromRow(row))
	}
	return titles, nil
}

// GetTitle returns one title by number
func (s *Service) GetTitle(ctx context.Context, number int) (*Title, error) {
	row, err := s.querier.GetTitle(ctx, int64(number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("title %d: %w", number, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get title %d: %w", number, err)
	}
	t := titleFromRow(row)
	return &t, nil
}

// ListNodes returns the flattened hierarchy of one title in document order,
// optionally narrowed by the filter
func (s *Service) ListNodes(ctx context.Context, number int, filter NodeFilter) ([]Node, error) {
	var (
		rows []sqlc.TitleDetail
		err  error
	)
	switch {
	case filter.Type != "":
		rows, err = s.querier.ListTitleDetailsByType(ctx, sqlc.ListTitleDetailsByTypeParams{
			TitleNumber:   int64(number),
			HierarchyType: filter.Type,
		})
	case filter.LeafOnly:
		rows, err = s.querier.ListLeafTitleDetailsByTitle(ctx, int64(number))
	default:
		rows, err = s.querier.ListTitleDetailsByTitle(ctx, int64(number))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes for title %d: %w", number, err)
	}

	nodes := make([]Node, 0, len(rows))
	for _, row := range rows {
		if filter.LeafOnly && !row.IsLeafNode {
			continue
		}
		nodes = append(nodes, nodeFromRow(row))
	}
	return nodes, nil
}

// GetNode returns one hierarchy row by its CFR reference
func (s *Service) GetNode(ctx context.Context, ref string) (*Node, error) {
	row, err := s.querier.GetTitleDetail(ctx, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("node %q: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get node %q: %w", ref, err)
	}
	n := nodeFromRow(row)
	return &n, nil
}

// ListSyncs returns the sync state of every title that has been attempted
func (s *Service) ListSyncs(ctx context.Context) ([]SyncStatus, error) {
	rows, err := s.querier.ListTitleSyncs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list syncs: %w", err)
	}
	syncs := make([]SyncStatus, 0, len(rows))
	for _, row := range rows {
		syncs = append(syncs, SyncStatus{
			TitleNumber:   int(row.TitleNumber),
			Status:        row.SyncStatus,
			StructureHash: fromNull(row.StructureHash),
			StartedAt:     fromNull(row.StartedAt),
			CompletedAt:   fromNull(row.CompletedAt),
			Error:         fromNull(row.ErrorMsg),
		})
	}
	return syncs, nil
}

func titleFromRow(row sqlc.Title) Title {
	return Title{
		Number:            int(row.TitleNumber),
		Label:             fromNull(row.TitleLabel),
		LatestIssueDate:   fromNull(row.LatestIssueDate),
		LatestAmendedOn:   fromNull(row.LatestAmendedOn),
		UpToDateAsOf:      fromNull(row.UpToDateAsOf),
		Reserved:          row.Reserved,
		DetailsDownloaded: fromNull(row.TitleDetailsDownloadDate),
	}
}

func nodeFromRow(row sqlc.TitleDetail) Node {
	return Node{
		CFRRef:            row.CfrRef,
		TitleNumber:       int(row.TitleNumber),
		Type:              row.HierarchyType,
		Level:             int(row.HierarchyLevel),
		OrderID:           int(row.OrderID),
		IsLeaf:            row.IsLeafNode,
		Reserved:          row.Reserved,
		ChapterID:         fromNull(row.ChapterID),
		ChapterLabel:      fromNull(row.ChapterLabel),
		SubchapterID:      fromNull(row.SubchapterID),
		SubchapterLabel:   fromNull(row.SubchapterLabel),
		PartID:            fromNull(row.PartID),
		PartLabel:         fromNull(row.PartLabel),
		SubpartID:         fromNull(row.SubpartID),
		SubpartLabel:      fromNull(row.SubpartLabel),
		SectionID:         fromNull(row.SectionID),
		SectionLabel:      fromNull(row.SectionLabel),
		AppendixID:        fromNull(row.AppendixID),
		AppendixLabel:     fromNull(row.AppendixLabel),
		SubjectGroupID:    fromNull(row.SubjectGrpID),
		SubjectGroupLabel: fromNull(row.SubjectGrpLabel),
		RegText:           fromNull(row.RegText),
		TextDownloaded:    fromNull(row.RegTextDownloadDate),
	}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
