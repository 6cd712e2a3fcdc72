package mimetypes

import (
	"mime"
	"strings"

	"wa-gateway/domain"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown     MIME = "unknown"
	OctetStream MIME = "application/octet-stream"

	ApplicationPDF MIME = "application/pdf"
	ImagePNG       MIME = "image/png"
	ImageJPEG      MIME = "image/jpeg"
	ImageWebP      MIME = "image/webp"
	VideoMP4       MIME = "video/mp4"
	AudioOGG       MIME = "audio/ogg"
	AudioMPEG      MIME = "audio/mpeg"
)

// Detect sniffs the MIME type from the leading bytes of a file.
func Detect(data []byte) MIME {
	return MIME(mimetype.Detect(data).String())
}

// Matches tells whether a detected type (parameters allowed) is the expected one.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// KindOf maps a MIME type onto the message kind used to deliver it.
// Anything that is neither an image, a video nor an audio goes out as a document.
func KindOf(detected MIME) domain.MediaKind {
	mt, _, err := mime.ParseMediaType(string(detected))
	if err != nil {
		return domain.MediaDocument
	}
	top, _, _ := strings.Cut(mt, "/")
	switch top {
	case "image":
		return domain.MediaImage
	case "video":
		return domain.MediaVideo
	case "audio":
		return domain.MediaAudio
	default:
		return domain.MediaDocument
	}
}
