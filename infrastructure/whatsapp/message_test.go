package whatsapp

import (
	"testing"

	"wa-gateway/domain"
	"wa-gateway/errors"

	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/types"
)

func TestToJID(t *testing.T) {
	req := require.New(t)

	jid, err := toJID("5551234567@c.us")
	req.NoError(err)
	req.Equal("5551234567", jid.User)
	req.Equal(types.DefaultUserServer, jid.Server)
	req.Equal("5551234567@c.us", toChatID(jid))

	group, err := toJID("120363025246125486@g.us")
	req.NoError(err)
	req.Equal(types.GroupServer, group.Server)

	for _, bad := range []string{"@c.us", "abc@c.us", "555 123@c.us", "nobody"} {
		_, err := toJID(bad)
		req.ErrorIs(err, errors.ErrInvalidChatID, bad)
	}
}

func TestMediaMessage(t *testing.T) {
	req := require.New(t)
	up := whatsmeow.UploadResponse{URL: "https://mmg", DirectPath: "/v/t62", FileLength: 42}

	// Given an image with a caption
	img := mediaMessage(domain.Media{Kind: domain.MediaImage, MimeType: "image/png"}, "look", up)
	req.NotNil(img.GetImageMessage())
	req.Equal("look", img.GetImageMessage().GetCaption())
	req.Equal(uint64(42), img.GetImageMessage().GetFileLength())

	// Given an audio clip, the caption is dropped
	audio := mediaMessage(domain.Media{Kind: domain.MediaAudio, MimeType: "audio/ogg"}, "ignored", up)
	req.NotNil(audio.GetAudioMessage())
	req.Equal("audio/ogg", audio.GetAudioMessage().GetMimetype())

	// Given a document, the file name is kept
	doc := mediaMessage(domain.Media{Kind: domain.MediaDocument, FileName: "invoice.pdf", MimeType: "application/pdf"}, "", up)
	req.Equal("invoice.pdf", doc.GetDocumentMessage().GetFileName())
	req.Nil(doc.GetDocumentMessage().Caption)

	video := mediaMessage(domain.Media{Kind: domain.MediaVideo, MimeType: "video/mp4"}, "clip", up)
	req.Equal("/v/t62", video.GetVideoMessage().GetDirectPath())
}

func TestMediaTypeOf(t *testing.T) {
	req := require.New(t)
	req.Equal(whatsmeow.MediaImage, mediaTypeOf(domain.MediaImage))
	req.Equal(whatsmeow.MediaVideo, mediaTypeOf(domain.MediaVideo))
	req.Equal(whatsmeow.MediaAudio, mediaTypeOf(domain.MediaAudio))
	req.Equal(whatsmeow.MediaDocument, mediaTypeOf(domain.MediaDocument))
}
