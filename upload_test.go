package scribe

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd", "etc_passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"dir/sub/file.txt", "dir_sub_file.txt"},
		{"weird name!.png", "weird_name_.png"},
		{".hidden", "hidden"},
		{"...", ""},
		{"", ""},
		{"héllo.jpg", "h_llo.jpg"},
	}
	for _, tt := range tests {
		got := sanitizeFilename(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if strings.ContainsAny(got, "/\\") {
			t.Errorf("sanitizeFilename(%q) = %q contains a path separator", tt.in, got)
		}
	}
}

// fileHeader builds a *multipart.FileHeader carrying content under the given
// client filename, the way a browser upload would deliver it.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(uploadField, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/uploader", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File[uploadField][0]
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()

	name, err := saveUpload(fileHeader(t, "notes.txt", []byte("hello")), dir)
	if err != nil {
		t.Fatalf("saveUpload failed: %v", err)
	}
	if name != "notes.txt" {
		t.Errorf("stored name = %q, want %q", name, "notes.txt")
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("stored content = %q, want %q", data, "hello")
	}
}

func TestSaveUploadOverwritesSilently(t *testing.T) {
	dir := t.TempDir()

	if _, err := saveUpload(fileHeader(t, "a.txt", []byte("one")), dir); err != nil {
		t.Fatal(err)
	}
	if _, err := saveUpload(fileHeader(t, "a.txt", []byte("two")), dir); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Errorf("content after overwrite = %q, want %q", data, "two")
	}
}

func TestSaveUploadTraversalStaysInDir(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "uploads")

	name, err := saveUpload(fileHeader(t, "../../etc/passwd", []byte("x")), dir)
	if err != nil {
		t.Fatalf("saveUpload failed: %v", err)
	}
	if strings.ContainsAny(name, "/\\") {
		t.Fatalf("stored name %q contains path separators", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Errorf("expected file inside upload dir: %v", err)
	}
	// Nothing may land outside the configured directory.
	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "uploads" {
			t.Errorf("unexpected file outside upload dir: %s", e.Name())
		}
	}
}

func TestSaveUploadUnsalvageableName(t *testing.T) {
	if _, err := saveUpload(fileHeader(t, "...", []byte("x")), t.TempDir()); err == nil {
		t.Fatal("expected an error for a name that sanitizes to nothing")
	}
}
