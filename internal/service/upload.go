package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const sniffLen = 512

var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

type UploadService struct {
	uploader ports.Uploader
	maxSize  int64
	logger   logger.Logger
}

func NewUploadService(uploader ports.Uploader, maxSize int64, logger logger.Logger) *UploadService {
	return &UploadService{
		uploader: uploader,
		maxSize:  maxSize,
		logger:   logger,
	}
}

// Upload stores a payment proof and returns its public URL.
// The content type is sniffed from the data, not taken from the client.
func (s *UploadService) Upload(ctx context.Context, size int64, r io.Reader) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("%w: file is empty", domain.ErrValidation)
	}
	if size > s.maxSize {
		return "", domain.ErrFileTooLarge
	}

	br := bufio.NewReaderSize(io.LimitReader(r, s.maxSize), sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}

	contentType := http.DetectContentType(head)
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, contentType)
	}

	name := uuid.New().String() + ext
	url, err := s.uploader.Upload(ctx, name, contentType, br)
	if err != nil {
		s.logger.Error("upload failed",
			logger.String("name", name),
			logger.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %w", domain.ErrUpload, err)
	}

	s.logger.Info("file uploaded",
		logger.String("name", name),
		logger.String("content_type", contentType),
		logger.Int64("size", size),
	)

	return url, nil
}
