// Package ecfr is a client for the eCFR versioner API.
//
// The versioner API exposes three document families used here: the list of
// all CFR titles with their revision metadata, the hierarchical structure
// (table of contents) of a title as of a given date, and the full regulation
// text of a title as XML.
package ecfr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/httpclient"
)

// Client fetches regulation documents from the eCFR API
type Client struct {
	httpClient httpclient.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a new eCFR API client for the given base URL
func NewClient(httpClient httpclient.Client, baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// ListTitles fetches metadata for all CFR titles. When filter is non-empty,
// only the listed title numbers are returned, in ascending order.
func (c *Client) ListTitles(ctx context.Context, filter []int) ([]TitleMeta, error) {
	url := c.baseURL + "/api/versioner/v1/titles"
	c.logger.Info("Fetching titles metadata", zap.String("url", url))

	data, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch titles: %w", err)
	}

	var resp titlesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode titles response: %w", err)
	}

	if len(filter) == 0 {
		return resp.Titles, nil
	}

	wanted := make(map[int]bool, len(filter))
	for _, n := range filter {
		wanted[n] = true
	}

	titles := make([]TitleMeta, 0, len(filter))
	for _, t := range resp.Titles {
		if wanted[t.Number] {
			titles = append(titles, t)
		}
	}
	sort.Slice(titles, func(i, j int) bool { return titles[i].Number < titles[j].Number })

	c.logger.Info("Filtered titles metadata",
		zap.Int("total", len(resp.Titles)),
		zap.Int("matched", len(titles)))

	return titles, nil
}

// FetchStructure fetches the hierarchical structure of a title as of the given
// date (YYYY-MM-DD). It returns the decoded root node along with the raw
// document, which callers use for hashing and caching.
func (c *Client) FetchStructure(ctx context.Context, date string, titleNumber int) (*StructureNode, []byte, error) {
	url := fmt.Sprintf("%s/api/versioner/v1/structure/%s/title-%d.json", c.baseURL, date, titleNumber)
	c.logger.Info("Fetching title structure", zap.String("url", url))

	data, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch structure for title %d: %w", titleNumber, err)
	}

	var root StructureNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("failed to decode structure for title %d: %w", titleNumber, err)
	}

	return &root, data, nil
}

// FetchFullText fetches the complete regulation text of a title as of the
// given date, as raw XML.
func (c *Client) FetchFullText(ctx context.Context, date string, titleNumber int) ([]byte, error) {
	url := fmt.Sprintf("%s/api/versioner/v1/full/%s/title-%d.xml", c.baseURL, date, titleNumber)
	c.logger.Info("Fetching full title text", zap.String("url", url))

	data, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch full text for title %d: %w", titleNumber, err)
	}
	return data, nil
}

// Hash returns the hex-encoded SHA-256 digest of a fetched document
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
