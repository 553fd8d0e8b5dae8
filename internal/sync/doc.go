// Package sync implements the title sync pipeline: it compares upstream
// metadata against stored state, fetches structure and full-text documents
// for titles that changed, flattens the hierarchy, and hands the records to
// a writer for merging.
package sync
