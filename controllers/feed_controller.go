package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/boska/laundry-dash-api/services"
	"github.com/gin-gonic/gin"
)

// FeedController exposes the repository activity feed
type FeedController struct {
	github *services.GitHubService
}

// NewFeedController creates a feed controller
func NewFeedController(github *services.GitHubService) *FeedController {
	return &FeedController{github: github}
}

// GetCommits handles GET /api/v1/feed/:owner/:repo/commits. Upstream
// failures are logged and surface as an empty feed; the client shows
// its empty state and the user retries with pull-to-refresh.
func (ctl *FeedController) GetCommits(c *gin.Context) {
	owner := c.Param("owner")
	repo := c.Param("repo")

	commits, err := ctl.github.FetchCommits(c.Request.Context(), owner, repo)
	if err != nil {
		log.Printf("Error fetching commit messages for %s/%s: %v", owner, repo, err)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"items": []services.FeedItem{},
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": services.BuildFeed(commits, time.Now()),
		},
	})
}
