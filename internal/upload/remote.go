package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"portfolio-api/internal/apperr"
)

// ErrNotConfigured means the image-service base URL or token is missing.
var ErrNotConfigured = errors.New("image service is not configured")

// Remote forwards the raw bytes to an external image-hosting service and
// returns the hosted photo URL.
type Remote struct {
	BaseURL  string
	Token    string
	MaxBytes int64
	Client   *http.Client
}

func NewRemote(baseURL, token string, maxBytes int64) (*Remote, error) {
	if baseURL == "" || token == "" {
		return nil, ErrNotConfigured
	}
	return &Remote{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Token:    token,
		MaxBytes: maxBytes,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type remoteResponse struct {
	Photo struct {
		ID       string `json:"id"`
		URL      string `json:"url"`
		Filename string `json:"filename"`
	} `json:"photo"`
	Error string `json:"error"`
}

func (r *Remote) Store(ctx context.Context, fh *multipart.FileHeader, tags []string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", apperr.BadRequest("No image file received")
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", apperr.BadRequest("Please upload an image file")
	}
	if fh.Size == 0 {
		return "", apperr.BadRequest("Invalid image file format")
	}
	if r.MaxBytes > 0 && fh.Size > r.MaxBytes {
		return "", apperr.BadRequest(fmt.Sprintf("file exceeds the %d byte limit", r.MaxBytes))
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Upload("could not read uploaded file", err)
	}
	defer src.Close()
	reader := io.Reader(src)
	if r.MaxBytes > 0 {
		reader = io.LimitReader(src, r.MaxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", apperr.Upload("could not read uploaded file", err)
	}
	if r.MaxBytes > 0 && int64(len(body)) > r.MaxBytes {
		return "", apperr.BadRequest(fmt.Sprintf("file exceeds the %d byte limit", r.MaxBytes))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		r.BaseURL+"/api/images/upload", bytes.NewReader(body))
	if err != nil {
		return "", apperr.Upload("could not build upload request", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Authorization", "Bearer "+r.Token)
	req.Header.Set("filename", fh.Filename)
	if len(tags) > 0 {
		req.Header.Set("tagList", strings.Join(tags, ","))
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", apperr.Upload("image service unreachable", err)
	}
	defer resp.Body.Close()

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode < 300 {
		return "", apperr.Upload("image service returned an unreadable response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Error
		if msg == "" {
			msg = resp.Status
		}
		return "", apperr.Upload("Error uploading image : "+msg, nil)
	}
	if out.Photo.URL == "" {
		return "", apperr.Upload("image service returned no photo url", nil)
	}
	return out.Photo.URL, nil
}
