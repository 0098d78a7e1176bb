package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBytesReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("User-Agent = %q, attendu %q", ua, DefaultUserAgent)
		}
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	data, err := Bytes(context.Background(), srv.URL, 0, 0)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("corps = %q, attendu %q", data, "hello")
	}
}

func TestBytesRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Bytes(context.Background(), srv.URL, 0, 0); !errors.Is(err, ErrStatus) {
		t.Fatalf("attendu ErrStatus, obtenu %v", err)
	}
}

func TestBytesEnforcesSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	if _, err := Bytes(context.Background(), srv.URL, 0, 32); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("attendu ErrTooLarge, obtenu %v", err)
	}
}

func TestBytesRejectsInvalidURL(t *testing.T) {
	if _, err := Bytes(context.Background(), "pas une url", 0, 0); err == nil {
		t.Fatal("attendu une erreur pour une URL invalide")
	}
}

func TestJSONIntoDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v1.2.3","html_url":"https://example.com/r"}`))
	}))
	defer srv.Close()

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := JSONInto(context.Background(), srv.URL, 0, 0, &release); err != nil {
		t.Fatalf("JSONInto: %v", err)
	}
	if release.TagName != "v1.2.3" {
		t.Errorf("tag_name = %q, attendu %q", release.TagName, "v1.2.3")
	}
	if release.HTMLURL != "https://example.com/r" {
		t.Errorf("html_url = %q", release.HTMLURL)
	}
}

func TestJSONIntoEnforcesSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"` + strings.Repeat("v", 128) + `"}`))
	}))
	defer srv.Close()

	var release struct{}
	if err := JSONInto(context.Background(), srv.URL, 0, 32, &release); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("attendu ErrTooLarge, obtenu %v", err)
	}
}

func TestJSONIntoRejectsNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>pas du json</html>"))
	}))
	defer srv.Close()

	var release struct{}
	if err := JSONInto(context.Background(), srv.URL, 0, 0, &release); err == nil {
		t.Fatal("attendu une erreur de décodage")
	}
}
