package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/boska/laundry-dash-api/utils"
)

// Commit mirrors the fields of the GitHub commit-listing response the
// feed cares about
type Commit struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		AvatarURL string `json:"avatar_url"`
		Login     string `json:"login"`
	} `json:"author"`
}

// FeedItem is one rendered entry of the activity feed
type FeedItem struct {
	SHA          string `json:"sha"`
	HTMLURL      string `json:"html_url"`
	Message      string `json:"message"`
	Author       string `json:"author"`
	AvatarURL    string `json:"avatar_url"`
	Date         string `json:"date"`
	RelativeTime string `json:"relative_time"`
}

// GitHubService fetches the commit feed from the GitHub REST API
type GitHubService struct {
	baseURL    string
	httpClient *http.Client
}

// NewGitHubService creates a GitHub service instance. baseURL may
// override the public API host (for testing); empty means the real API.
func NewGitHubService(baseURL string) *GitHubService {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &GitHubService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchCommits lists the commits of owner/repo, newest first, as the
// API returns them. One page, no caching; the caller retries by calling
// again.
func (s *GitHubService) FetchCommits(ctx context.Context, owner, repo string) ([]Commit, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits", s.baseURL, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("GitHub API request failed: %d", resp.StatusCode)
	}

	var commits []Commit
	if err := json.NewDecoder(resp.Body).Decode(&commits); err != nil {
		return nil, fmt.Errorf("failed to decode commits: %w", err)
	}
	return commits, nil
}

// BuildFeed maps raw commits to rendered feed items. The author column
// shows the GitHub login when present, else the commit author name.
func BuildFeed(commits []Commit, now time.Time) []FeedItem {
	items := make([]FeedItem, 0, len(commits))
	for _, c := range commits {
		item := FeedItem{
			SHA:     c.SHA,
			HTMLURL: c.HTMLURL,
			Message: c.Commit.Message,
			Author:  c.Commit.Author.Name,
			Date:    c.Commit.Author.Date,
		}
		if c.Author != nil && c.Author.Login != "" {
			item.Author = c.Author.Login
			item.AvatarURL = c.Author.AvatarURL
		}
		if t, err := time.Parse(time.RFC3339, c.Commit.Author.Date); err == nil {
			item.RelativeTime = utils.RelativeTime(t, now)
		}
		items = append(items, item)
	}
	return items
}
