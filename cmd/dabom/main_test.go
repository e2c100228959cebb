package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dabomai/dabom-aigo/providers/tool/dabom"
)

func newSearchServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer cli-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// isolate points every config source away from the developer's machine.
func isolate(t *testing.T, baseURL string) []string {
	t.Helper()
	for _, key := range []string{dabom.EnvAPIKey, "DABOM_MAX_RESULTS", "DABOM_TIMEOUT", "AIGO_LOG_LEVEL", "LOG_LEVEL", "AIGO_LOG_FORMAT", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	t.Setenv("DABOM_BASE_URL", baseURL)
	return []string{"-env-file", filepath.Join(t.TempDir(), "missing.env")}
}

func TestRun_Search(t *testing.T) {
	server := newSearchServer(t, http.StatusOK, `{"results":[{"url":"https://a.test","content":"a","score":1}]}`)
	args := isolate(t, server.URL)

	for _, mode := range [][]string{nil, {"-async"}} {
		var stdout, stderr bytes.Buffer
		callArgs := append(append(append([]string{}, args...), mode...), "-api-key", "cli-key", "golang", "news")

		if code := run(context.Background(), callArgs, &stdout, &stderr); code != exitOK {
			t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
		}

		var results []dabom.CleanedResult
		if err := json.Unmarshal(stdout.Bytes(), &results); err != nil {
			t.Fatalf("stdout is not a results array: %s", stdout.String())
		}
		if len(results) != 1 || results[0].URL != "https://a.test" {
			t.Errorf("results = %+v", results)
		}
	}
}

func TestRun_Raw(t *testing.T) {
	server := newSearchServer(t, http.StatusOK, `{"answer":"42","results":[]}`)
	args := isolate(t, server.URL)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append(args, "-raw", "-api-key", "cli-key", "q"), &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}

	var raw map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		t.Fatalf("stdout is not an object: %s", stdout.String())
	}
	if raw["answer"] != "42" {
		t.Errorf("raw = %v", raw)
	}
}

func TestRun_FailuresAreInBand(t *testing.T) {
	server := newSearchServer(t, http.StatusOK, `{}`)

	tests := []struct {
		name     string
		args     []string
		wantText string
	}{
		{name: "missing api key", args: []string{"q"}, wantText: "invalid configuration"},
		{name: "missing results", args: []string{"-api-key", "cli-key", "q"}, wantText: "malformed response"},
		{name: "rejected key", args: []string{"-api-key", "wrong", "q"}, wantText: "dabom: error 401"},
		{name: "raw without key", args: []string{"-raw", "q"}, wantText: "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := isolate(t, server.URL)
			var stdout, stderr bytes.Buffer

			if code := run(context.Background(), append(args, tt.args...), &stdout, &stderr); code != exitOK {
				t.Fatalf("exit code = %d, want %d", code, exitOK)
			}

			var msg string
			if err := json.Unmarshal(stdout.Bytes(), &msg); err != nil {
				t.Fatalf("stdout is not an error string: %s", stdout.String())
			}
			if !strings.Contains(msg, tt.wantText) {
				t.Errorf("message = %q, want it to contain %q", msg, tt.wantText)
			}
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no query", args: []string{"-api-key", "k"}},
		{name: "unknown flag", args: []string{"-nope", "q"}},
		{name: "negative max results", args: []string{"-max-results", "-1", "q"}},
		{name: "missing config file", args: []string{"-config", "/does/not/exist.yaml", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := isolate(t, "http://127.0.0.1:1")
			var stdout, stderr bytes.Buffer

			if code := run(context.Background(), append(args, tt.args...), &stdout, &stderr); code != exitUsage {
				t.Errorf("exit code = %d, want %d", code, exitUsage)
			}
			if stdout.Len() != 0 {
				t.Errorf("unexpected stdout: %s", stdout.String())
			}
		})
	}
}
