package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/xyz-asif/cleancity/internal/pkg/logger"
	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

const (
	// MaxAttachments is the most files a single report may carry.
	MaxAttachments = 5

	// MaxImageSize bounds each file before transcoding.
	MaxImageSize = int64(5 * 1024 * 1024) // 5MB

	maxWidth    = 800
	maxHeight   = 600
	jpegQuality = 80

	processTimeout = 30 * time.Second
)

// AllowedImageTypes lists the raster formats accepted for upload.
var AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var allowedContentTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

// DroppedFile records a file that failed transcoding and was excluded
// from the stored report.
type DroppedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Result is the outcome of processing one upload batch. Images holds the
// transcoded payloads in upload order; Dropped lists the files that did
// not survive transcoding.
type Result struct {
	Images  []string      `json:"images"`
	Dropped []DroppedFile `json:"dropped"`
}

// ValidateFiles rejects a batch before any transcoding starts: too many
// files, an oversize file, or a file that is not a raster image all fail
// the whole request.
func ValidateFiles(files []*multipart.FileHeader) error {
	if len(files) > MaxAttachments {
		return fmt.Errorf("%w: at most %d images per report", pkgerrors.ErrTooManyAttachments, MaxAttachments)
	}

	for _, header := range files {
		if header.Size > MaxImageSize {
			return fmt.Errorf("%w: %s exceeds maximum size of %d MB",
				pkgerrors.ErrValidation, header.Filename, MaxImageSize/(1024*1024))
		}
		if !isAllowedImage(header) {
			return fmt.Errorf("%w: %s", pkgerrors.ErrUnsupportedMediaType, header.Filename)
		}
	}

	return nil
}

// Process transcodes every file into a bounded JPEG data URI. Files are
// processed concurrently but the output preserves upload order. A file
// that fails to decode or encode is dropped, logged, and reported in the
// result; it does not fail the batch. Context cancellation abandons the
// whole batch.
func Process(ctx context.Context, files []*multipart.FileHeader) (*Result, error) {
	if err := ValidateFiles(files); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	payloads := make([]string, len(files))
	drops := make([]*DroppedFile, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, header := range files {
		i, header := i, header
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			payload, err := transcode(header)
			if err != nil {
				logger.Warn("dropping image %q: %v", header.Filename, err)
				drops[i] = &DroppedFile{Filename: header.Filename, Reason: err.Error()}
				return nil
			}

			payloads[i] = payload
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: image processing aborted", pkgerrors.ErrTimeout)
		}
		return nil, err
	}

	result := &Result{Images: []string{}, Dropped: []DroppedFile{}}
	for i := range files {
		if drops[i] != nil {
			result.Dropped = append(result.Dropped, *drops[i])
			continue
		}
		result.Images = append(result.Images, payloads[i])
	}

	return result, nil
}

// transcode normalizes one upload: decode, fit into 800x600 without
// upscaling, re-encode as JPEG, and wrap as a data URI.
func transcode(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(io.LimitReader(file, MaxImageSize))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	fitted := imaging.Fit(src, maxWidth, maxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func isAllowedImage(header *multipart.FileHeader) bool {
	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	for _, allowed := range allowedContentTypes {
		if contentType == allowed {
			return true
		}
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range AllowedImageTypes {
		if ext == allowed {
			return true
		}
	}

	return false
}
