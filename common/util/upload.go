package util

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const (
	maxUploadSize  = int64(10 * 1024 * 1024)
	maxImageBounds = 1200

	// signature (8) + chunk length (4) + "IHDR" (4) + width (4) + height (4)
	pngBitDepthOffset  = 24
	pngInterlaceOffset = 28
)

// uploadNamePattern matches files written by SaveUpload.
var uploadNamePattern = regexp.MustCompile(`^[0-9a-f]{32}_`)

// IsUploadName reports whether name was produced by SaveUpload.
func IsUploadName(name string) bool {
	return uploadNamePattern.MatchString(name)
}

// UploadName returns a collision-resistant file name for an uploaded file.
func UploadName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + base
}

// SaveUpload stores an uploaded image in dir under a randomized name and returns
// its path. JPEG and 8-bit non-interlaced PNG are kept byte for byte; other
// images are converted to PNG so the PDF writer can embed them.
func SaveUpload(dir string, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("file %s exceeds %d bytes", file.Filename, maxUploadSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := UploadName(file.Filename)
	mtype := mimetype.Detect(data)

	keep := mtype.Is("image/jpeg") || (mtype.Is("image/png") && embeddablePNG(data)) || !strings.HasPrefix(mtype.String(), "image/")
	if keep {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("failed to save uploaded file: %w", err)
		}
		return path, nil
	}

	converted, err := normalizeImage(data)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s (%s): %w", file.Filename, mtype.String(), err)
	}

	path := filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name))+".png")
	if err := os.WriteFile(path, converted, 0644); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	slog.Info("Upload converted to PNG", "file", file.Filename, "from", mtype.String(), "path", path)
	return path, nil
}

func normalizeImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	if exceeds(img.Bounds(), maxImageBounds) {
		img = imaging.Fit(img, maxImageBounds, maxImageBounds, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// embeddablePNG reports whether the PDF writer can embed a PNG as is. It
// rejects 16-bit channels and interlacing; both are read from the IHDR chunk.
func embeddablePNG(data []byte) bool {
	if len(data) < pngInterlaceOffset+1 {
		return false
	}
	return data[pngBitDepthOffset] <= 8 && data[pngInterlaceOffset] == 0
}

func exceeds(bounds image.Rectangle, limit int) bool {
	return bounds.Dx() > limit || bounds.Dy() > limit
}
