package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog"

	"kellum/api/internal/media/sniffer"
)

var ErrUnsupportedCover = errors.New("unsupported cover image")

// CoverStore is the object storage the cover service writes to.
type CoverStore interface {
	PutCover(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	RemoveCover(ctx context.Context, objectKey string) error
}

// CoverService validates and stores cover art for catalog entries.
type CoverService struct {
	store CoverStore
	log   zerolog.Logger
}

func NewCoverService(store CoverStore, log zerolog.Logger) *CoverService {
	return &CoverService{store: store, log: log}
}

// Upload sniffs the payload, rejects anything that is not a raster
// image, stores it under <kind>/<id>.<ext> and returns the object key.
func (s *CoverService) Upload(ctx context.Context, kind, id string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if file == nil || header == nil {
		return "", ErrUnsupportedCover
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return "", ErrUnsupportedCover
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	result, err := sniffer.DetectHead(head)
	if err != nil {
		return "", ErrUnsupportedCover
	}

	declared := sniffer.MimeTypeFromHTTP(http.Header(header.Header))
	if declared != "" && declared != result.MIME {
		s.log.Debug().Str("declared", declared).Str("actual", result.MIME).Msg("cover content type mismatch")
		return "", ErrUnsupportedCover
	}

	objectKey := fmt.Sprintf("%s/%s.%s", kind, id, result.Type)
	if err := s.store.PutCover(ctx, objectKey, bytes.NewReader(data), int64(len(data)), result.MIME); err != nil {
		return "", fmt.Errorf("store cover: %w", err)
	}

	return objectKey, nil
}

// Remove drops the stored cover object for a deleted catalog entry.
func (s *CoverService) Remove(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return nil
	}
	if err := s.store.RemoveCover(ctx, objectKey); err != nil {
		return fmt.Errorf("remove cover: %w", err)
	}
	return nil
}
