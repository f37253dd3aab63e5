// Package registry looks up the latest published version of npm-distributed
// CLI tools.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

// Client fetches package metadata from an npm-compatible registry.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client against the public npm registry.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type packageInfo struct {
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
}

// LatestVersion returns the version published under the "latest" dist-tag.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	url := fmt.Sprintf("%s/%s", c.BaseURL, pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("registry request for %s failed: %w", pkg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned status %d for %s", resp.StatusCode, pkg)
	}

	var info packageInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to parse registry response for %s: %w", pkg, err)
	}
	if info.DistTags.Latest == "" {
		return "", fmt.Errorf("no latest dist-tag for %s", pkg)
	}
	return info.DistTags.Latest, nil
}

// IsNewer reports whether latest is a strictly newer version than installed,
// comparing dotted numeric parts and treating missing parts as zero.
func IsNewer(latest, installed string) bool {
	latestParts := versionParts(latest)
	installedParts := versionParts(installed)

	n := len(latestParts)
	if len(installedParts) > n {
		n = len(installedParts)
	}
	for i := 0; i < n; i++ {
		var l, in int
		if i < len(latestParts) {
			l = latestParts[i]
		}
		if i < len(installedParts) {
			in = installedParts[i]
		}
		if l != in {
			return l > in
		}
	}
	return false
}

func versionParts(v string) []int {
	var parts []int
	for _, p := range strings.Split(strings.TrimPrefix(v, "v"), ".") {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		parts = append(parts, n)
	}
	return parts
}
