package mmapview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.csv")

	content := []byte("a,b,c\nd,e,f\ng,h,i")
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	view, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer view.Close()

	if string(view.Bytes()) != string(content) {
		t.Errorf("Bytes() = %q, want %q", view.Bytes(), content)
	}
	if view.Len() != len(content) {
		t.Errorf("Len() = %d, want %d", view.Len(), len(content))
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "empty.csv")

	if err := os.WriteFile(testFile, []byte{}, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	view, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer view.Close()

	if view.Len() != 0 {
		t.Errorf("Len() = %d, want 0", view.Len())
	}
}

func TestOpen_NonexistentFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Open() should return error for nonexistent file")
	}
	var openErr *OpenError
	if _, ok := err.(*OpenError); !ok {
		t.Errorf("Open() error type = %T, want %T", err, openErr)
	}
}

func TestOpen_Directory(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Fatal("Open() should return error for a directory")
	}
}

func TestClose_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.csv")
	if err := os.WriteFile(testFile, []byte("a,b,c\n"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	view, err := Open(testFile)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := view.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := view.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
