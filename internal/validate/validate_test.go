package validate

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDatasetClean(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "0001.png", "img")
	write(t, dir, "0001.txt", "doom_sol logo, flat design, white background.\n")
	write(t, dir, "0002.png", "img")
	write(t, dir, "0002.txt", "doom_sol logo, flat design, black background.\n")

	result, err := Dataset(dir, "doom_", false)
	if err != nil {
		t.Fatal(err)
	}
	if !result.OK() {
		t.Errorf("expected clean result, got findings: %v", result.Findings)
	}
	if result.Images != 2 || result.Captions != 2 {
		t.Errorf("counted %d images, %d captions", result.Images, result.Captions)
	}
}

func TestDatasetFindings(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "0001.png", "img") // missing caption
	write(t, dir, "0002.txt", "doom_sol logo.")
	write(t, dir, "0003.png", "img")
	write(t, dir, "0003.txt", "a logo without the trigger")

	result, err := Dataset(dir, "doom_", false)
	if err != nil {
		t.Fatal(err)
	}

	var messages []string
	for _, f := range result.Findings {
		messages = append(messages, f.File+": "+f.Message)
	}
	joined := strings.Join(messages, "\n")

	if !strings.Contains(joined, "0001.png: missing caption") {
		t.Errorf("missing-caption finding absent:\n%s", joined)
	}
	if !strings.Contains(joined, "0002.txt: no matching image") {
		t.Errorf("orphan-caption finding absent:\n%s", joined)
	}
	if !strings.Contains(joined, "0003.txt: does not start with") {
		t.Errorf("trigger finding absent:\n%s", joined)
	}
}

func TestDatasetNonNumericFiles(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "mockup-photo.png", "img") // no caption
	write(t, dir, "hero.png", "img")
	write(t, dir, "hero.txt", "doom_sol logo on a billboard.")
	write(t, dir, "logo-white.png", "logo") // assets stay exempt

	result, err := Dataset(dir, "doom_", false)
	if err != nil {
		t.Fatal(err)
	}
	if result.Images != 2 || result.Captions != 1 {
		t.Errorf("counted %d images, %d captions; want 2 and 1", result.Images, result.Captions)
	}

	if len(result.Findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %v", result.Findings)
	}
	f := result.Findings[0]
	if f.File != "mockup-photo.png" || f.Message != "missing caption" {
		t.Errorf("unexpected finding: %+v", f)
	}
}

func TestDatasetEmpty(t *testing.T) {
	result, err := Dataset(t.TempDir(), "doom_", false)
	if err != nil {
		t.Fatal(err)
	}
	if result.OK() {
		t.Error("empty dataset should report missing images and captions")
	}
}

func TestDatasetMissingDir(t *testing.T) {
	if _, err := Dataset("/nonexistent/path/12345", "doom_", false); err == nil {
		t.Error("expected error for missing dataset directory")
	}
}

func TestDatasetDecodeCheck(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "0001.png"), buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	write(t, dir, "0001.txt", "doom_x")
	write(t, dir, "0002.png", "not a real png")
	write(t, dir, "0002.txt", "doom_x")

	result, err := Dataset(dir, "doom_", true)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, f := range result.Findings {
		if f.File == "0002.png" && strings.Contains(f.Message, "cannot decode") {
			found = true
		}
		if f.File == "0001.png" {
			t.Errorf("valid image flagged: %s", f.Message)
		}
	}
	if !found {
		t.Error("corrupt image not reported by decode check")
	}
}

func TestPrint(t *testing.T) {
	result := &Result{
		Name:     "doge",
		Images:   3,
		Captions: 2,
		Findings: []Finding{{File: "0003.png", Message: "missing caption"}},
	}

	var buf bytes.Buffer
	result.Print(&buf)
	out := buf.String()

	for _, want := range []string{"doge:", "Images: 3, Captions: 2", "Warning: 0003.png: missing caption"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\nFull output:\n%s", want, out)
		}
	}
}
