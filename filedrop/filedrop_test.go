package filedrop

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pawmart/filemgr"
)

func multipartUpload(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("part.Write: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestUploadStoresImageAndThumbnail(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(dir, "http://localhost:4000")

	rec := httptest.NewRecorder()
	u.Upload(rec, multipartUpload(t, "product", "kibble.png", tinyPNG(t)), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  int    `json:"success"`
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success != 1 {
		t.Fatalf("expected success flag 1, got %d", resp.Success)
	}
	if !strings.Contains(resp.ImageURL, "/images/product_") {
		t.Fatalf("unexpected image url %q", resp.ImageURL)
	}

	name := resp.ImageURL[strings.LastIndex(resp.ImageURL, "/")+1:]
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("stored image missing: %v", err)
	}

	thumb := strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	if _, err := os.Stat(filepath.Join(dir, filemgr.ThumbSubdir, thumb)); err != nil {
		t.Fatalf("thumbnail missing: %v", err)
	}
}

func TestUploadWithoutFile(t *testing.T) {
	u := NewUploader(t.TempDir(), "http://localhost:4000")

	rec := httptest.NewRecorder()
	u.Upload(rec, multipartUpload(t, "wrongfield", "kibble.png", tinyPNG(t)), nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No file uploaded") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUploadRejectsBadExtension(t *testing.T) {
	u := NewUploader(t.TempDir(), "http://localhost:4000")

	rec := httptest.NewRecorder()
	u.Upload(rec, multipartUpload(t, "product", "malware.exe", []byte("MZ")), nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
