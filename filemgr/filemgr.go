package filemgr

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	MaxImageSize = 5 << 20 // 5 MB

	ThumbSubdir = "thumb"
	thumbSize   = 200
)

var (
	AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	AllowedMIMEs      = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

func isExtensionAllowed(ext string) bool {
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string) bool {
	for _, a := range AllowedMIMEs {
		if mimeType == a {
			return true
		}
	}
	return false
}

// ProductImageName builds the stored filename for an upload, keeping
// the storefront's product_<millis><ext> convention.
func ProductImageName(originalName string, now time.Time) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !isExtensionAllowed(ext) {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}
	return fmt.Sprintf("product_%d%s", now.UnixMilli(), ext), nil
}

// SaveProductImage validates and stores an uploaded product photo in
// destDir and writes a JPEG thumbnail next to it under thumb/.
// It returns the stored filename.
func SaveProductImage(src io.Reader, header *multipart.FileHeader, destDir string) (string, error) {
	if header.Size > MaxImageSize {
		return "", ErrFileTooLarge
	}
	// Clients that don't sniff send application/octet-stream; the
	// extension whitelist still applies to those.
	mimeType := header.Header.Get("Content-Type")
	if mimeType != "" && mimeType != "application/octet-stream" && !isMIMEAllowed(mimeType) {
		return "", fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}

	name, err := ProductImageName(header.Filename, time.Now())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	fullPath := filepath.Join(destDir, name)
	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(out, io.LimitReader(src, MaxImageSize)); err != nil {
		out.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	if err := writeThumbnail(fullPath, destDir, name); err != nil {
		// The original is stored; a bad thumbnail should not fail the upload.
		return name, nil
	}
	return name, nil
}

func writeThumbnail(fullPath, destDir, name string) error {
	f, err := os.Open(fullPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	thumbDir := filepath.Join(destDir, ThumbSubdir)
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return err
	}

	thumb := imaging.Thumbnail(img, thumbSize, thumbSize, imaging.Lanczos)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return imaging.Save(thumb, filepath.Join(thumbDir, base+".jpg"))
}
