package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boska/laundry-dash-api/config"
	"github.com/boska/laundry-dash-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newUploadRouter() *gin.Engine {
	router := setupTestRouter()
	router.POST("/uploads", UploadPhoto)
	router.GET("/uploads/:filename", GetUploadedPhoto)
	return router
}

func doUpload(t *testing.T, router *gin.Engine, field, filename string, content []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return w, response
}

func TestUploadPhotoLocal(t *testing.T) {
	uploadDir := t.TempDir()
	config.SetConfig(&config.Config{GoEnv: "test", UploadDir: uploadDir})
	defer config.SetConfig(nil)

	router := newUploadRouter()

	w, response := doUpload(t, router, "photo", "laundry.png", []byte("fake png bytes"))

	assert.Equal(t, http.StatusCreated, w.Code)
	data := response["data"].(map[string]interface{})
	key := data["key"].(string)
	assert.True(t, strings.HasSuffix(key, "_laundry.png"))
	assert.Equal(t, fmt.Sprintf("/api/v1/uploads/%s", key), data["url"])

	saved, err := os.ReadFile(filepath.Join(uploadDir, key))
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), saved)
}

func TestUploadPhotoS3(t *testing.T) {
	config.SetConfig(&config.Config{GoEnv: "test", AWSS3Bucket: "laundry-photos-test"})
	defer config.SetConfig(nil)

	mockS3 := services.NewMockS3Service()
	services.InitPhotoService(mockS3)

	router := newUploadRouter()

	w, response := doUpload(t, router, "photo", "laundry.png", []byte("fake png bytes"))

	assert.Equal(t, http.StatusCreated, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "uploads/mock_laundry.png", data["key"])
	assert.Contains(t, data["url"], "uploads/mock_laundry.png")
	assert.Equal(t, 1, mockS3.FileCount())
}

func TestUploadPhotoValidation(t *testing.T) {
	tests := []struct {
		name         string
		field        string
		filename     string
		expectedCode string
	}{
		{"Wrong form field", "file", "laundry.png", "MISSING_FILE"},
		{"Unsupported format", "photo", "laundry.gif", "INVALID_FILE_FORMAT"},
		{"JPEG not accepted", "photo", "laundry.jpg", "INVALID_FILE_FORMAT"},
		{"No extension", "photo", "laundry", "INVALID_FILE_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.SetConfig(&config.Config{GoEnv: "test", UploadDir: t.TempDir()})
			defer config.SetConfig(nil)

			router := newUploadRouter()

			w, response := doUpload(t, router, tt.field, tt.filename, []byte("content"))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			errorData := response["error"].(map[string]interface{})
			assert.Equal(t, tt.expectedCode, errorData["code"])
		})
	}
}

func TestGetUploadedPhoto(t *testing.T) {
	uploadDir := t.TempDir()
	config.SetConfig(&config.Config{GoEnv: "test", UploadDir: uploadDir})
	defer config.SetConfig(nil)

	content := []byte("stored png")
	assert.NoError(t, os.WriteFile(filepath.Join(uploadDir, "shirt.png"), content, 0644))

	router := newUploadRouter()

	req, _ := http.NewRequest(http.MethodGet, "/uploads/shirt.png", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestGetUploadedPhotoErrors(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		expectedStatus int
		expectedCode   string
	}{
		{"Traversal attempt", "..secret.png", http.StatusBadRequest, "INVALID_FILENAME"},
		{"Unsupported extension", "notes.txt", http.StatusBadRequest, "INVALID_FILE_TYPE"},
		{"Missing photo", "nope.png", http.StatusNotFound, "FILE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.SetConfig(&config.Config{GoEnv: "test", UploadDir: t.TempDir()})
			defer config.SetConfig(nil)

			router := newUploadRouter()

			req, _ := http.NewRequest(http.MethodGet, "/uploads/"+tt.filename, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			errorData := response["error"].(map[string]interface{})
			assert.Equal(t, tt.expectedCode, errorData["code"])
		})
	}
}
