package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"backend-brightway/internal/config"
)

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestSeedSamplePosts(t *testing.T) {
	if n := NewServer(config.Config{SeedSamplePosts: true}).Posts.Len(); n != 2 {
		t.Fatalf("expected 2 seeded posts, got %d", n)
	}
	if n := NewServer(config.Config{}).Posts.Len(); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}

func TestRoutesMounted(t *testing.T) {
	s := NewServer(config.Config{SeedSamplePosts: true})

	for _, path := range []string{"/community/posts", "/community/moods", "/chat/suggestions", "/podcasts", "/podcasts/languages", "/learning/modules", "/learning/categories"} {
		resp, err := s.App.Test(httptest.NewRequest("GET", path, nil))
		if err != nil || resp.StatusCode != 200 {
			t.Fatalf("GET %s: unexpected response", path)
		}
	}
}

func TestMetricsCountPosts(t *testing.T) {
	s := NewServer(config.Config{})

	body, _ := json.Marshal(map[string]string{"mood": "Calm", "text": "hello"})
	req := httptest.NewRequest("POST", "/community/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if resp, err := s.App.Test(req); err != nil || resp.StatusCode != 201 {
		t.Fatalf("create post failed")
	}

	resp, err := s.App.Test(httptest.NewRequest("GET", "/metrics", nil))
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("metrics status: %v", err)
	}
	out, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(out), "brightway_community_posts_created_total 1") {
		t.Fatalf("expected created counter")
	}
}
