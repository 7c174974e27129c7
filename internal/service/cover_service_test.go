package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type memoryCoverStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemoryCoverStore() *memoryCoverStore {
	return &memoryCoverStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (s *memoryCoverStore) PutCover(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectKey] = data
	s.types[objectKey] = contentType
	return nil
}

func (s *memoryCoverStore) RemoveCover(ctx context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	delete(s.types, objectKey)
	return nil
}

var pngPayload = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, bytes.Repeat([]byte{0x00}, 32)...)

func multipartFile(t *testing.T, filename, contentType string, payload []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("PUT", "/covers", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	file, fileHeader, err := req.FormFile("file")
	require.NoError(t, err)
	return file, fileHeader
}

func TestCoverUploadStoresSniffedImage(t *testing.T) {
	store := newMemoryCoverStore()
	svc := NewCoverService(store, zerolog.Nop())

	file, header := multipartFile(t, "cover.png", "image/png", pngPayload)
	defer file.Close()

	key, err := svc.Upload(context.Background(), "games", "g1", file, header)
	require.NoError(t, err)
	require.Equal(t, "games/g1.png", key)
	require.Equal(t, pngPayload, store.objects[key])
	require.Equal(t, "image/png", store.types[key])
}

func TestCoverUploadRejectsUnknownFormat(t *testing.T) {
	store := newMemoryCoverStore()
	svc := NewCoverService(store, zerolog.Nop())

	file, header := multipartFile(t, "cover.txt", "", []byte("not an image"))
	defer file.Close()

	_, err := svc.Upload(context.Background(), "games", "g1", file, header)
	require.ErrorIs(t, err, ErrUnsupportedCover)
	require.Empty(t, store.objects)
}

func TestCoverUploadRejectsDeclaredTypeMismatch(t *testing.T) {
	store := newMemoryCoverStore()
	svc := NewCoverService(store, zerolog.Nop())

	file, header := multipartFile(t, "cover.png", "image/jpeg", pngPayload)
	defer file.Close()

	_, err := svc.Upload(context.Background(), "movies", "m1", file, header)
	require.ErrorIs(t, err, ErrUnsupportedCover)
}

func TestCoverRemoveDropsStoredObject(t *testing.T) {
	store := newMemoryCoverStore()
	svc := NewCoverService(store, zerolog.Nop())

	file, header := multipartFile(t, "cover.png", "image/png", pngPayload)
	defer file.Close()

	key, err := svc.Upload(context.Background(), "games", "g1", file, header)
	require.NoError(t, err)
	require.Contains(t, store.objects, key)

	require.NoError(t, svc.Remove(context.Background(), key))
	require.NotContains(t, store.objects, key)

	// a blank key is a no-op, not an error
	require.NoError(t, svc.Remove(context.Background(), ""))
}

func TestCoverUploadRejectsEmptyFile(t *testing.T) {
	store := newMemoryCoverStore()
	svc := NewCoverService(store, zerolog.Nop())

	file, header := multipartFile(t, "cover.png", "image/png", nil)
	defer file.Close()

	_, err := svc.Upload(context.Background(), "games", "g1", file, header)
	require.ErrorIs(t, err, ErrUnsupportedCover)
}
