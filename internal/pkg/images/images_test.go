package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

type upload struct {
	filename    string
	contentType string
	data        []byte
}

// buildHeaders round-trips uploads through a real multipart form so the
// resulting FileHeaders are openable, exactly like gin hands them over.
func buildHeaders(t *testing.T, uploads []upload) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, u := range uploads {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+u.filename+`"`)
		header.Set("Content-Type", u.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(u.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["images"]
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buf.Bytes()
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()

	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return img
}

func TestProcess(t *testing.T) {
	headers := buildHeaders(t, []upload{
		{"small.jpg", "image/jpeg", encodeJPEG(t, 100, 80)},
		{"big.png", "image/png", encodePNG(t, 1600, 1200)},
	})

	result, err := Process(context.Background(), headers)
	require.NoError(t, err)
	require.Len(t, result.Images, 2)
	require.Empty(t, result.Dropped)

	// Small inputs are never upscaled; large ones are fitted into 800x600.
	small := decodeDataURI(t, result.Images[0])
	require.Equal(t, 100, small.Bounds().Dx())
	require.Equal(t, 80, small.Bounds().Dy())

	big := decodeDataURI(t, result.Images[1])
	require.Equal(t, 800, big.Bounds().Dx())
	require.Equal(t, 600, big.Bounds().Dy())
}

func TestProcess_EmptyBatch(t *testing.T) {
	result, err := Process(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, result.Images)
	require.Empty(t, result.Dropped)
}

func TestProcess_CorruptFileIsDropped(t *testing.T) {
	headers := buildHeaders(t, []upload{
		{"first.jpg", "image/jpeg", encodeJPEG(t, 40, 40)},
		{"broken.jpg", "image/jpeg", []byte("not actually a jpeg")},
		{"third.jpg", "image/jpeg", encodeJPEG(t, 60, 60)},
	})

	result, err := Process(context.Background(), headers)
	require.NoError(t, err)

	require.Len(t, result.Images, 2)
	require.Equal(t, 40, decodeDataURI(t, result.Images[0]).Bounds().Dx())
	require.Equal(t, 60, decodeDataURI(t, result.Images[1]).Bounds().Dx())

	require.Len(t, result.Dropped, 1)
	require.Equal(t, "broken.jpg", result.Dropped[0].Filename)
	require.NotEmpty(t, result.Dropped[0].Reason)
}

func TestProcess_CanceledContext(t *testing.T) {
	headers := buildHeaders(t, []upload{
		{"photo.jpg", "image/jpeg", encodeJPEG(t, 40, 40)},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Process(ctx, headers)
	require.ErrorIs(t, err, pkgerrors.ErrTimeout)
}

func TestValidateFiles_TooMany(t *testing.T) {
	headers := make([]*multipart.FileHeader, MaxAttachments+1)
	for i := range headers {
		headers[i] = &multipart.FileHeader{
			Filename: "photo.jpg",
			Size:     1024,
			Header:   textproto.MIMEHeader{"Content-Type": {"image/jpeg"}},
		}
	}

	require.ErrorIs(t, ValidateFiles(headers), pkgerrors.ErrTooManyAttachments)
}

func TestValidateFiles_Oversize(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "huge.jpg",
		Size:     MaxImageSize + 1,
		Header:   textproto.MIMEHeader{"Content-Type": {"image/jpeg"}},
	}

	err := ValidateFiles([]*multipart.FileHeader{header})
	require.ErrorIs(t, err, pkgerrors.ErrValidation)
}

func TestValidateFiles_UnsupportedType(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "notes.pdf",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": {"application/pdf"}},
	}

	err := ValidateFiles([]*multipart.FileHeader{header})
	require.ErrorIs(t, err, pkgerrors.ErrUnsupportedMediaType)
}

func TestValidateFiles_ExtensionFallback(t *testing.T) {
	// Some clients omit the part content type; the extension still admits it.
	header := &multipart.FileHeader{
		Filename: "photo.webp",
		Size:     1024,
		Header:   textproto.MIMEHeader{},
	}

	require.NoError(t, ValidateFiles([]*multipart.FileHeader{header}))
}
