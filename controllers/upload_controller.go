package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/boska/laundry-dash-api/config"
	"github.com/boska/laundry-dash-api/services"
	"github.com/boska/laundry-dash-api/utils"
	"github.com/gin-gonic/gin"
)

// UploadPhoto handles POST /api/v1/uploads - stores a laundry photo
// from the camera or photo-booth screen. Photos go to S3 when a bucket
// is configured, else to the local uploads directory.
func UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "A photo file is required",
			},
		})
		return
	}

	if err := utils.ValidatePhotoFile(fileHeader); err != nil {
		uploadErr := err.(*utils.FileUploadError)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    uploadErr.Code,
				"message": uploadErr.Message,
			},
		})
		return
	}

	cfg := config.GetConfig()
	if cfg != nil && cfg.HasS3() {
		photoService := services.GetPhotoService()
		key, err := photoService.UploadPhoto(fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPLOAD_FAILED",
					"message": "Failed to store photo",
				},
			})
			return
		}

		url, err := photoService.GetPhotoURL(key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPLOAD_FAILED",
					"message": "Failed to generate photo URL",
				},
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data": gin.H{
				"key": key,
				"url": url,
			},
		})
		return
	}

	uploadDir := "./uploads"
	if cfg != nil && cfg.UploadDir != "" {
		uploadDir = cfg.UploadDir
	}

	filename, err := utils.SaveUploadedFile(fileHeader, uploadDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to store photo",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"key": filename,
			"url": utils.GetPhotoURL(filename),
		},
	})
}

// GetUploadedPhoto handles GET /api/v1/uploads/:filename - serves
// locally stored photos
func GetUploadedPhoto(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Filename is required",
			},
		})
		return
	}

	// Prevent directory traversal
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILENAME",
				"message": "Invalid filename",
			},
		})
		return
	}

	if strings.ToLower(filepath.Ext(filename)) != ".png" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILE_TYPE",
				"message": "Only PNG files are supported",
			},
		})
		return
	}

	uploadDir := "./uploads"
	if cfg := config.GetConfig(); cfg != nil && cfg.UploadDir != "" {
		uploadDir = cfg.UploadDir
	}

	filePath := filepath.Join(uploadDir, filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_NOT_FOUND",
				"message": "Photo not found",
			},
		})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "public, max-age=86400")
	c.File(filePath)
}
