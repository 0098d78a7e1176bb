package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testClient(baseURL string) *Client {
	return New(baseURL, Options{
		MaxUploadBytes: 1024 * 1024,
		VideoTypes:     []string{"video/mp4"},
		AudioTypes:     []string{"audio/wav"},
	})
}

// writeTempMedia crée un petit fichier média factice et retourne son chemin.
func writeTempMedia(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateFileRejectsBadMIME(t *testing.T) {
	c := testClient("http://localhost:5000")
	path := writeTempMedia(t, "notes.txt", 10)

	err := c.ValidateFile(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateFileRejectsOversize(t *testing.T) {
	c := New("http://localhost:5000", Options{
		MaxUploadBytes: 16,
		VideoTypes:     []string{"video/mp4"},
	})
	path := writeTempMedia(t, "clip.mp4", 64)

	err := c.ValidateFile(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for oversize file, got %v", err)
	}
}

func TestValidateFileAcceptsSupportedMedia(t *testing.T) {
	c := testClient("http://localhost:5000")
	path := writeTempMedia(t, "clip.mp4", 64)
	if err := c.ValidateFile(path); err != nil {
		t.Fatalf("expected valid file, got %v", err)
	}
}

func TestUploadReportsProgressAndFilePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"file_path": "/tmp/uploads/clip.mp4",
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	path := writeTempMedia(t, "clip.mp4", 4096)

	var last int
	got, err := c.Upload(context.Background(), path, func(p int) { last = p })
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/uploads/clip.mp4" {
		t.Fatalf("unexpected file_path %q", got)
	}
	if last != 100 {
		t.Fatalf("progress must reach 100, got %d", last)
	}
}

func TestUploadBackendRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "disk full"})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	path := writeTempMedia(t, "clip.mp4", 16)

	_, err := c.Upload(context.Background(), path, nil)
	var uerr *UploadError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UploadError, got %v", err)
	}
}

func TestProcessSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/process" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["file_path"] != "/tmp/uploads/clip.mp4" {
			t.Errorf("unexpected file_path %q", req["file_path"])
		}
		_, _ = w.Write([]byte(`{"success": true, "transcript": [
			{"id": 1, "text": "Hi", "start": 0, "end": 1.5, "speaker": "S1"}
		]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	res, err := c.Process(context.Background(), "/tmp/uploads/clip.mp4")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Segments) != 1 || res.Segments[0].Text != "Hi" {
		t.Fatalf("unexpected segments: %+v", res.Segments)
	}
	if len(res.Raw) == 0 {
		t.Fatal("raw payload must be kept for optional saving")
	}
}

func TestProcessExplicitFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "no speech detected"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Process(context.Background(), "x")
	var perr *ProcessingError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProcessingError, got %v", err)
	}
	if perr.Message != "no speech detected" {
		t.Fatalf("backend message lost: %q", perr.Message)
	}
}

func TestProcessMalformedResponseEchoesRaw(t *testing.T) {
	// ni success ni transcript : contrat violé -> erreur avec écho du brut
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"weird": "shape"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Process(context.Background(), "x")
	var perr *ProcessingError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProcessingError, got %v", err)
	}
	if len(perr.Raw) == 0 {
		t.Fatal("malformed response must carry the raw payload for diagnosis")
	}
}
