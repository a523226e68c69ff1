package pathkit

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// Exists reports whether the location exists as either a file or a
// directory.
func (p Path) Exists() bool {
	_, err := p.sys().Stat(p.loc)
	return err == nil
}

// FileExists reports existence and, when present, whether the entry is a
// file rather than a directory. Both answers come from a single stat call;
// isFile is meaningful only when exists is true.
func (p Path) FileExists() (exists, isFile bool) {
	info, err := p.sys().Stat(p.loc)
	if err != nil {
		return false, false
	}
	return true, !info.IsDir()
}

// FolderExists reports whether the location exists and is a directory.
func (p Path) FolderExists() bool {
	exists, isFile := p.FileExists()
	return exists && !isFile
}

// Extension returns the filename extension without the leading dot, derived
// purely from the path string.
func (p Path) Extension() string {
	return strings.TrimPrefix(filepath.Ext(p.loc), ".")
}

// MimeType maps the filename extension to a MIME type via the platform's
// type registry. Empty when the extension is absent or unmapped; lookup
// never fails.
func (p Path) MimeType() string {
	ext := filepath.Ext(p.loc)
	if ext == "" {
		return ""
	}
	return mime.TypeByExtension(ext)
}

// DetectMimeType sniffs the file contents for an accurate MIME type.
// Best effort: any read or detection failure yields an empty string.
func (p Path) DetectMimeType() string {
	data, err := p.sys().ReadFile(p.loc, 0)
	if err != nil {
		pkgLog.Debug("mime detection failed", zap.String("path", p.loc), zap.Error(err))
		return ""
	}
	return mimetype.Detect(data).String()
}
