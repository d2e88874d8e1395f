package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// MaxUploadSize mirrors the backend's 50MB limit so oversize files are
// rejected before any bytes leave the machine.
const MaxUploadSize = 50 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".dcm":  true,
	".pdf":  true,
	".docx": true,
}

// ValidateUpload checks a candidate file locally: it must exist, carry a
// supported extension (DICOM/PDF/DOCX), and fit the size limit. PDFs are
// additionally checked for structural validity.
func ValidateUpload(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("upload file %s is a directory", path)
	}
	if info.Size() > MaxUploadSize {
		return fmt.Errorf("upload file exceeds 50MB limit (%d bytes)", info.Size())
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q, expected .dcm, .pdf or .docx", ext)
	}

	if ext == ".pdf" {
		if err := pdfapi.ValidateFile(path, nil); err != nil {
			return fmt.Errorf("invalid PDF: %w", err)
		}
	}

	return nil
}
