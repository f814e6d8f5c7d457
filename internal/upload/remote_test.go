package upload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-api/internal/apperr"
)

func TestRemote_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/images/upload", r.URL.Path)
		require.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "shot.png", r.Header.Get("filename"))
		require.Equal(t, "go,web", r.Header.Get("tagList"))
		body, _ := io.ReadAll(r.Body)
		require.Equal(t, "img-bytes", string(body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"photo":{"id":"1","url":"https://img.example.com/1.jpg"}}`)
	}))
	defer srv.Close()

	rm, err := NewRemote(srv.URL, "tok", 5<<20)
	require.NoError(t, err)

	fh := newFileHeader(t, "shot.png", "image/png", []byte("img-bytes"))
	url, err := rm.Store(context.Background(), fh, []string{"go", "web"})
	require.NoError(t, err)
	require.Equal(t, "https://img.example.com/1.jpg", url)
}

func TestRemote_ServiceErrorSurfacesRemoteMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"error":"storage full"}`)
	}))
	defer srv.Close()

	rm, err := NewRemote(srv.URL, "tok", 5<<20)
	require.NoError(t, err)

	fh := newFileHeader(t, "shot.png", "image/png", []byte("x"))
	_, err = rm.Store(context.Background(), fh, nil)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindUpload, ae.Kind)
	require.Contains(t, ae.Error(), "storage full")
}

func TestRemote_RejectsNonImageWithoutCalling(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	rm, err := NewRemote(srv.URL, "tok", 5<<20)
	require.NoError(t, err)

	fh := newFileHeader(t, "doc.txt", "text/plain", []byte("hello"))
	_, err = rm.Store(context.Background(), fh, nil)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindValidation, ae.Kind)
	require.Equal(t, int32(0), calls.Load())
}

func TestRemote_OversizedRejectedWithoutCalling(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	rm, err := NewRemote(srv.URL, "tok", 10)
	require.NoError(t, err)

	fh := newFileHeader(t, "big.png", "image/png", make([]byte, 11))
	_, err = rm.Store(context.Background(), fh, nil)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindValidation, ae.Kind)
	require.Equal(t, int32(0), calls.Load())
}

func TestNewRemote_MissingConfig(t *testing.T) {
	t.Parallel()

	_, err := NewRemote("", "tok", 0)
	require.ErrorIs(t, err, ErrNotConfigured)
	_, err = NewRemote("https://img.example.com", "", 0)
	require.ErrorIs(t, err, ErrNotConfigured)
}
