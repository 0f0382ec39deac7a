package cmd

import (
	"testing"
	"time"

	"showcase/pkg/config"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long template name", 10, "a very ..."},
		{"abc", 2, "ab"},
		{"héllo wörld template", 10, "héllo w..."},
		{"日本語のテンプレート", 3, "日本語"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.max); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
		}
	}
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.Stop()

	// A burst of triggers closer together than the quiet period
	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case <-d.C:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected one signal after the burst settled")
	}

	select {
	case <-d.C:
		t.Fatal("burst produced more than one signal")
	case <-time.After(100 * time.Millisecond):
	}

	// A fresh trigger after the quiet period fires again
	d.Trigger()
	select {
	case <-d.C:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected a signal for a new burst")
	}
}

func TestIsCollectionFile(t *testing.T) {
	appConfig = config.DefaultConfig()

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"template file", "/proj/templates/Login Form.html", true},
		{"thumbnail png", "/proj/thumbnails/Login Form.png", true},
		{"thumbnail uppercase ext", "/proj/thumbnails/Shot.PNG", true},
		{"hidden file", "/proj/templates/.Login Form.html.swp", false},
		{"editor backup", "/proj/templates/~Login Form.html", false},
		{"generated output", "/proj/index.html", false},
		{"unrelated file", "/proj/templates/notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCollectionFile(tt.path); got != tt.expected {
				t.Errorf("isCollectionFile(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
