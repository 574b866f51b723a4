package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	outlineout "synmap/internal/modules/outline/adapter/out"
	apperrors "synmap/internal/platform/errors"
)

func TestGeminiProviderReturnsCandidateText(t *testing.T) {
	t.Parallel()
	var gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"name\":\"Root\"}"}]}}]}`))
	}))
	defer srv.Close()

	provider := outlineout.NewGeminiProvider("test-key", "gemini-1.5-flash", srv.URL)
	text, err := provider.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != `{"name":"Root"}` {
		t.Fatalf("unexpected text %q", text)
	}
	if gotKey != "test-key" {
		t.Fatalf("credential not passed through, got %q", gotKey)
	}
	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestGeminiProviderAPIError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	provider := outlineout.NewGeminiProvider("bad-key", "gemini-1.5-flash", srv.URL)
	_, err := provider.Complete(context.Background(), "prompt")
	if !errors.Is(err, apperrors.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestGeminiProviderMissingKey(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("request made without a credential")
	}))
	defer srv.Close()

	provider := outlineout.NewGeminiProvider("", "gemini-1.5-flash", srv.URL)
	if _, err := provider.Complete(context.Background(), "prompt"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGeminiProviderNoCandidates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	provider := outlineout.NewGeminiProvider("k", "gemini-1.5-flash", srv.URL)
	if _, err := provider.Complete(context.Background(), "prompt"); !errors.Is(err, apperrors.ErrProvider) {
		t.Fatalf("expected ErrProvider for empty candidates, got %v", err)
	}
}
