package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"radam-backend/config"
	"radam-backend/controllers"
	"radam-backend/models"
	"radam-backend/routes"
	"radam-backend/services"
	"radam-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// stubUploader stands in for the image host. URLs are derived from the
// folder and filename so tests can assert cover-image selection.
type stubUploader struct {
	err   error
	calls int
}

func (s *stubUploader) UploadAll(ctx context.Context, files []*multipart.FileHeader, folder string) ([]services.UploadResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	results := make([]services.UploadResult, 0, len(files))
	for _, f := range files {
		results = append(results, services.UploadResult{
			SecureURL: fmt.Sprintf("https://cdn.example.com/%s/%s", folder, f.Filename),
			PublicID:  f.Filename,
			Format:    "jpg",
			Width:     1200,
			Height:    800,
		})
	}
	return results, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *stubUploader) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret-123")

	db, err := config.Connect(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// an in-memory sqlite DB exists per connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.PortfolioItem{},
		&models.PortfolioImage{},
		&models.Booking{},
		&models.Contact{},
	))
	config.DB = db

	uploader := &stubUploader{}
	controllers.Uploader = uploader

	return routes.SetupRouter(), uploader
}

// adminToken creates the admin user and returns a bearer token for it.
func adminToken(t *testing.T) string {
	t.Helper()
	admin := models.User{Username: "admin", Email: "admin@radam.com"}
	require.NoError(t, admin.SetPassword("admin123"))
	require.NoError(t, config.DB.Create(&admin).Error)

	token, err := utils.GenerateToken(admin.ID, admin.Email)
	require.NoError(t, err)
	return token
}

func performJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// performMultipart submits form fields plus fake image files under the
// "images" key, the contract of the service and portfolio endpoints.
func performMultipart(router *gin.Engine, method, path string, fields map[string]string, imageNames []string, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		_ = writer.WriteField(name, value)
	}
	for _, name := range imageNames {
		part, _ := writer.CreateFormFile("images", name)
		_, _ = part.Write([]byte("fake image bytes"))
	}
	_ = writer.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
