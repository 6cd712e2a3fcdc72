package domain

type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaAudio    MediaKind = "audio"
	MediaDocument MediaKind = "document"
)

// ParseMediaKind accepts the optional "mediaType" hint of a send request.
// Unknown or empty hints return false and the kind gets sniffed from content.
func ParseMediaKind(s string) (MediaKind, bool) {
	switch k := MediaKind(s); k {
	case MediaImage, MediaVideo, MediaAudio, MediaDocument:
		return k, true
	default:
		return "", false
	}
}

// Media is a file loaded in memory and ready to be uploaded.
type Media struct {
	Path     string
	FileName string
	MimeType string
	Kind     MediaKind
	Data     []byte
}
