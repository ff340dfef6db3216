package tui

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"statement-wizard/domain"
)

// readAttachment loads a file for an upload slot. Files over the attachment
// limit are returned with their size only so the registry can reject them
// without the contents being read.
func readAttachment(path string) (domain.File, error) {
	path = strings.TrimSpace(path)
	info, err := os.Stat(path)
	if err != nil {
		return domain.File{}, err
	}
	if info.IsDir() {
		return domain.File{}, fmt.Errorf("%s is a directory", path)
	}

	file := domain.File{
		Name: filepath.Base(path),
		Size: info.Size(),
	}
	if file.Size > domain.MaxAttachmentSize {
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.File{}, err
	}
	file.Data = data
	file.Size = int64(len(data))
	file.ContentType = mime.TypeByExtension(filepath.Ext(path))
	if file.ContentType == "" {
		file.ContentType = http.DetectContentType(data)
	}
	return file, nil
}
