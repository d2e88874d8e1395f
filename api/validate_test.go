package api

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateUploadAcceptsSupportedTypes(t *testing.T) {
	// pdf excluded here: it additionally requires a structurally valid file
	for _, name := range []string{"scan.dcm", "report.docx", "REPORT.DOCX"} {
		path := writeTemp(t, name, 128)
		if err := ValidateUpload(path); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestValidateUploadRejectsUnknownExtension(t *testing.T) {
	path := writeTemp(t, "notes.txt", 16)
	err := ValidateUpload(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateUploadRejectsOversize(t *testing.T) {
	path := writeTemp(t, "big.docx", MaxUploadSize+1)
	err := ValidateUpload(path)
	if err == nil || !strings.Contains(err.Error(), "50MB") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateUploadRejectsMissingFile(t *testing.T) {
	if err := ValidateUpload(filepath.Join(t.TempDir(), "gone.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateUploadRejectsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "folder.pdf")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := ValidateUpload(dir); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestValidateUploadRejectsCorruptPDF(t *testing.T) {
	path := writeTemp(t, "broken.pdf", 64)
	if err := ValidateUpload(path); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}
