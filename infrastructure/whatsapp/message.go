package whatsapp

import (
	"fmt"
	"strings"
	"unicode"

	"wa-gateway/domain"
	"wa-gateway/errors"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"google.golang.org/protobuf/proto"
)

// toJID converts a "<digits>@c.us" chat address into a whatsmeow JID.
// Other fully qualified addresses (groups, broadcast lists) are parsed as is.
func toJID(chatID string) (types.JID, error) {
	if user, ok := strings.CutSuffix(chatID, domain.UserSuffix); ok {
		if user == "" || strings.IndexFunc(user, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
			return types.EmptyJID, fmt.Errorf("%w: %q", errors.ErrInvalidChatID, chatID)
		}
		return types.NewJID(user, types.DefaultUserServer), nil
	}
	jid, err := types.ParseJID(chatID)
	if err != nil || jid.User == "" {
		return types.EmptyJID, fmt.Errorf("%w: %q", errors.ErrInvalidChatID, chatID)
	}
	return jid, nil
}

// toChatID is the inverse of toJID for user addresses.
func toChatID(jid types.JID) string {
	return domain.NormalizeChatID(jid.User)
}

func mediaTypeOf(kind domain.MediaKind) whatsmeow.MediaType {
	switch kind {
	case domain.MediaImage:
		return whatsmeow.MediaImage
	case domain.MediaVideo:
		return whatsmeow.MediaVideo
	case domain.MediaAudio:
		return whatsmeow.MediaAudio
	default:
		return whatsmeow.MediaDocument
	}
}

func textMessage(text string) *waE2E.Message {
	return &waE2E.Message{Conversation: proto.String(text)}
}

// mediaMessage wraps an uploaded attachment in the message type matching its kind.
// Audio messages carry no caption.
func mediaMessage(media domain.Media, caption string, up whatsmeow.UploadResponse) *waE2E.Message {
	switch media.Kind {
	case domain.MediaImage:
		return &waE2E.Message{ImageMessage: &waE2E.ImageMessage{
			Caption:       optional(caption),
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	case domain.MediaVideo:
		return &waE2E.Message{VideoMessage: &waE2E.VideoMessage{
			Caption:       optional(caption),
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	case domain.MediaAudio:
		return &waE2E.Message{AudioMessage: &waE2E.AudioMessage{
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	default:
		return &waE2E.Message{DocumentMessage: &waE2E.DocumentMessage{
			Title:         proto.String(media.FileName),
			FileName:      proto.String(media.FileName),
			Caption:       optional(caption),
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return proto.String(s)
}
