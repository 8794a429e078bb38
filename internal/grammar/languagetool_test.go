package grammar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLanguageToolChecker_Check_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request
		if r.URL.Path != "/v2/check" {
			t.Errorf("Expected path /v2/check, got %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("language"); got != "de-DE" {
			t.Errorf("Expected language de-DE, got %s", got)
		}
		if got := r.PostForm.Get("text"); got == "" {
			t.Error("Expected text in request body")
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"matches":[{"message":"a"},{"message":"b"},{"message":"c"}]}`))
	}))
	defer server.Close()

	checker, err := NewLanguageToolChecker(Config{
		BaseURL:  server.URL,
		Language: "de-DE",
	})
	if err != nil {
		t.Fatalf("Failed to create checker: %v", err)
	}

	count, err := checker.Check(context.Background(), "Der Burge verpflichtet sich.")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 issues, got %d", count)
	}
}

func TestLanguageToolChecker_Check_NoIssues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[]}`))
	}))
	defer server.Close()

	checker, err := NewLanguageToolChecker(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create checker: %v", err)
	}

	count, err := checker.Check(context.Background(), "A clean sentence.")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 issues, got %d", count)
	}
}

func TestLanguageToolChecker_Check_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`upstream broke`))
	}))
	defer server.Close()

	checker, err := NewLanguageToolChecker(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create checker: %v", err)
	}

	_, err = checker.Check(context.Background(), "text")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("Expected error to mention HTTP 500, got %v", err)
	}
}

func TestLanguageToolChecker_Check_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{malformed json`))
	}))
	defer server.Close()

	checker, err := NewLanguageToolChecker(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create checker: %v", err)
	}

	_, err = checker.Check(context.Background(), "text")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
}

func TestLanguageToolChecker_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/languages" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker, err := NewLanguageToolChecker(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create checker: %v", err)
	}

	if !checker.IsAvailable(context.Background()) {
		t.Error("Expected available to be true")
	}

	// Test failure
	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if checker.IsAvailable(context.Background()) {
		t.Error("Expected available to be false on error")
	}
}

func TestNewChecker_Factory(t *testing.T) {
	checker, err := NewChecker(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error for disabled provider, got %v", err)
	}
	if checker != nil {
		t.Error("Expected nil checker for disabled provider")
	}

	if _, err := NewChecker(Config{Provider: "clippy"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	if _, err := NewChecker(Config{Provider: "openai"}); err == nil {
		t.Error("Expected error for openai provider without API key")
	}

	lt, err := NewChecker(Config{Provider: "languagetool"})
	if err != nil {
		t.Fatalf("Expected no error for languagetool provider, got %v", err)
	}
	if lt.Name() != "languagetool" {
		t.Errorf("Expected provider name languagetool, got %s", lt.Name())
	}
}
