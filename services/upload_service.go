// services/upload_service.go
package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// UploadResult is what the image host reports back per uploaded file.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// UploadError names the file whose upload failed.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %s: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ImageUploader sends image files to the external hosting service and
// returns one result per file, in order. The first failure aborts the
// whole batch; callers never get a partial batch.
type ImageUploader interface {
	UploadAll(ctx context.Context, files []*multipart.FileHeader, folder string) ([]UploadResult, error)
}

// CloudinaryService uploads images to Cloudinary over its HTTP API using
// signed requests.
type CloudinaryService struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
}

func NewCloudinaryService() *CloudinaryService {
	baseURL := os.Getenv("CLOUDINARY_UPLOAD_BASE")
	if baseURL == "" {
		baseURL = "https://api.cloudinary.com"
	}

	return &CloudinaryService{
		cloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		apiKey:    os.Getenv("CLOUDINARY_API_KEY"),
		apiSecret: os.Getenv("CLOUDINARY_API_SECRET"),
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *CloudinaryService) UploadAll(ctx context.Context, files []*multipart.FileHeader, folder string) ([]UploadResult, error) {
	results := make([]UploadResult, 0, len(files))

	for _, file := range files {
		result, err := s.uploadOne(ctx, file, folder)
		if err != nil {
			return nil, &UploadError{Filename: file.Filename, Err: err}
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *CloudinaryService) uploadOne(ctx context.Context, file *multipart.FileHeader, folder string) (UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return UploadResult{}, err
	}
	defer src.Close()

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	publicID := uuid.New().String()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	// Signature covers the request params in alphabetical order,
	// followed by the API secret.
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", folder, publicID, timestamp, s.apiSecret)
	digest := sha1.Sum([]byte(toSign))

	fields := map[string]string{
		"api_key":   s.apiKey,
		"timestamp": timestamp,
		"folder":    folder,
		"public_id": publicID,
		"signature": hex.EncodeToString(digest[:]),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return UploadResult{}, err
		}
	}

	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, src); err != nil {
		return UploadResult{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", s.baseURL, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return UploadResult{}, fmt.Errorf("cloudinary returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return UploadResult{}, err
	}

	return result, nil
}
