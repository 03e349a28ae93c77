package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		key  int
		ok   bool
	}{
		{"0001.png", 1, true},
		{"0045.txt", 45, true},
		{"0062.jpeg", 62, true},
		{"logo-white.png", 0, false},
		{"temp_0001.png", 0, false},
		{"1.png", 0, false},
		{"00012.png", 0, false},
		{"abcd.png", 0, false},
	}
	for _, tt := range tests {
		key, ok := ParseKey(tt.name)
		if ok != tt.ok || key != tt.key {
			t.Errorf("ParseKey(%q) = %d, %v; want %d, %v", tt.name, key, ok, tt.key, tt.ok)
		}
	}
}

func TestFormatKey(t *testing.T) {
	if got := FormatKey(7); got != "0007" {
		t.Errorf("FormatKey(7) = %q, want %q", got, "0007")
	}
	if got := FormatKey(1234); got != "1234" {
		t.Errorf("FormatKey(1234) = %q, want %q", got, "1234")
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"0001.png", "0001.txt",
		"0002.png", // image only
		"0003.txt", // caption only
		"logo-white.png", "logo-black.png",
		"notes.md",
	)

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(result.Pairs))
	}
	if !result.Pairs[1].Complete() {
		t.Error("pair 0001 should be complete")
	}
	if result.Pairs[2].Complete() || result.Pairs[2].ImagePath == "" {
		t.Error("pair 0002 should have an image only")
	}
	if result.Pairs[3].Complete() || result.Pairs[3].CaptionPath == "" {
		t.Error("pair 0003 should have a caption only")
	}
	if result.LogoCount != 2 {
		t.Errorf("expected 2 logo assets, got %d", result.LogoCount)
	}
	if result.SkippedCount != 1 {
		t.Errorf("expected 1 skipped file, got %d", result.SkippedCount)
	}
	if result.MaxKey() != 3 {
		t.Errorf("expected max key 3, got %d", result.MaxKey())
	}

	want := []int{1, 2, 3}
	for i, key := range result.Keys {
		if key != want[i] {
			t.Errorf("Keys[%d] = %d, want %d", i, key, want[i])
		}
	}
}

func TestScanEmpty(t *testing.T) {
	result, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Pairs) != 0 || result.MaxKey() != 0 {
		t.Errorf("expected empty result, got %d pairs", len(result.Pairs))
	}
}

func TestScanNonexistentDir(t *testing.T) {
	if _, err := Scan("/nonexistent/path/12345"); err == nil {
		t.Error("expected error for nonexistent directory")
	}
}
