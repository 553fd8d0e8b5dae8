// Package storage persists raw downloaded documents to the local filesystem
// so that structure and full-text payloads can be inspected after a sync.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ttbdata/ecfr-sync/internal/hierarchy"
)

// File names within a per-title directory
const (
	StructureFileName = "structure.json"
	FlattenedFileName = "structure-flat.json"
	FullTextFileName  = "full.xml"
)

///go:generate mockgen -destination=mocks/mock_manager.go -package=mocks github.com/ttbdata/ecfr-sync/internal/storage Manager

// Manager defines the interface for raw document persistence
type Manager interface {
	// SaveStructure saves the raw structure document for a title
	SaveStructure(ctx context.Context, titleNumber int, data []byte) error

	// SaveFlattened saves the flattened hierarchy records for a title
	SaveFlattened(ctx context.Context, titleNumber int, records []hierarchy.Record) error

	// SaveFullText saves the raw full-text XML for a title
	SaveFullText(ctx context.Context, titleNumber int, data []byte) error

	// Delete removes all cached documents for a title
	Delete(ctx context.Context, titleNumber int) error
}

// fileManager implements Manager using the local filesystem
type fileManager struct {
	basePath string
}

// NewFileManager creates a new file-based document cache rooted at basePath
func NewFileManager(basePath string) Manager {
	return &fileManager{basePath: basePath}
}

func (f *fileManager) titleDir(titleNumber int) string {
	return filepath.Join(f.basePath, fmt.Sprintf("ecfr_title-%d", titleNumber))
}

// SaveStructure saves the raw structure document for a title
func (f *fileManager) SaveStructure(_ context.Context, titleNumber int, data []byte) error {
	return f.writeFile(titleNumber, StructureFileName, data)
}

// SaveFlattened saves the flattened hierarchy records for a title
func (f *fileManager) SaveFlattened(_ context.Context, titleNumber int, records []hierarchy.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal flattened records: %w", err)
	}
	return f.writeFile(titleNumber, FlattenedFileName, data)
}

// SaveFullText saves the raw full-text XML for a title
func (f *fileManager) SaveFullText(_ context.Context, titleNumber int, data []byte) error {
	return f.writeFile(titleNumber, FullTextFileName, data)
}

// Delete removes all cached documents for a title
func (f *fileManager) Delete(_ context.Context, titleNumber int) error {
	if err := os.RemoveAll(f.titleDir(titleNumber)); err != nil {
		return fmt.Errorf("failed to delete cached documents: %w", err)
	}
	return nil
}

// writeFile writes data atomically via a temporary file and rename
func (f *fileManager) writeFile(titleNumber int, name string, data []byte) error {
	dir := f.titleDir(titleNumber)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	filePath := filepath.Join(dir, name)
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename cached file: %w", err)
	}

	return nil
}
