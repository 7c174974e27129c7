package sniffer

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectHead(t *testing.T) {
	cases := []struct {
		name string
		head []byte
		want MediaType
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, TypeJPEG},
		{"png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00}, TypePNG},
		{"gif87", []byte("GIF87a trailer"), TypeGIF},
		{"gif89", []byte("GIF89a trailer"), TypeGIF},
		{"webp", []byte("RIFF....WEBPVP8 "), TypeWEBP},
	}

	for _, tc := range cases {
		result, err := DetectHead(tc.head)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, result.Type, tc.name)
	}
}

func TestDetectHeadRejectsUnknown(t *testing.T) {
	_, err := DetectHead([]byte("<svg xmlns=...>"))
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = DetectHead(nil)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestMimeTypeFromHTTP(t *testing.T) {
	header := http.Header{}
	header.Set("Content-Type", "image/png; charset=binary")
	require.Equal(t, "image/png", MimeTypeFromHTTP(header))

	require.Equal(t, "", MimeTypeFromHTTP(http.Header{}))
}
