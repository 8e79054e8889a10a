package upload

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_PutStyle(t *testing.T) {
	var putBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/uploads/presign":
			assert.Equal(t, "photo.png", r.URL.Query().Get("filename"))
			assert.Equal(t, "image/png", r.URL.Query().Get("contentType"))
			_ = json.NewEncoder(w).Encode(map[string]string{
				"uploadUrl": "http://" + r.Host + "/bucket/photo.png?sig=abc",
				"publicUrl": "http://" + r.Host + "/bucket/photo.png",
			})
		case r.Method == http.MethodPut:
			putBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Upload(context.Background(), "photo.png", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "/bucket/photo.png"))
	assert.Equal(t, "png bytes", string(putBody))
}

func TestUpload_PutStyleWithoutPublicURLStripsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/uploads/presign":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"uploadUrl": "http://" + r.Host + "/bucket/file.bin?X-Signature=zzz",
			})
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Upload(context.Background(), "file.bin", "application/octet-stream", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, got, "X-Signature")
	assert.True(t, strings.HasSuffix(got, "/bucket/file.bin"))
}

func TestUpload_FormStyle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/uploads/presign":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"url":    "http://" + r.Host + "/bucket",
				"fields": map[string]string{"key": "uploads/doc.txt", "policy": "p"},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/bucket":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "uploads/doc.txt", r.FormValue("key"))
			_, _, err := r.FormFile("file")
			assert.NoError(t, err)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Upload(context.Background(), "doc.txt", "text/plain", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "/bucket/uploads/doc.txt"))
}

func TestUpload_PresignFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Upload(context.Background(), "f", "text/plain", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestUpload_EmptyPresignResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Upload(context.Background(), "f", "text/plain", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no upload target")
}

func TestUpload_UploadFailureSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/uploads/presign" {
			_ = json.NewEncoder(w).Encode(map[string]string{
				"uploadUrl": "http://" + r.Host + "/denied",
			})
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Upload(context.Background(), "f", "text/plain", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
