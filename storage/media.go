package storage

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"wa-gateway/domain"
	"wa-gateway/domain/mimetypes"
	"wa-gateway/errors"
)

// LoadMedia reads a file to be sent as an attachment.
// The MIME type is sniffed from content; kind, when given, overrides the
// message kind derived from it. A missing file is reported as ErrMediaNotFound.
func LoadMedia(path string, kind domain.MediaKind) (domain.Media, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return domain.Media{}, fmt.Errorf("%w: %s", errors.ErrMediaNotFound, path)
		}
		return domain.Media{}, fmt.Errorf("reading media %s: %w", path, err)
	}

	mimeType := mimetypes.Detect(data)
	if kind == "" {
		kind = mimetypes.KindOf(mimeType)
	}
	return domain.Media{
		Path:     path,
		FileName: filepath.Base(path),
		MimeType: string(mimeType),
		Kind:     kind,
		Data:     data,
	}, nil
}
