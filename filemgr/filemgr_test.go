package filemgr

import (
	"errors"
	"testing"
	"time"
)

func TestProductImageName(t *testing.T) {
	now := time.UnixMilli(1634567890123)

	name, err := ProductImageName("kibble photo.PNG", now)
	if err != nil {
		t.Fatalf("ProductImageName: %v", err)
	}
	if name != "product_1634567890123.png" {
		t.Fatalf("unexpected stored name %q", name)
	}
}

func TestProductImageNameRejectsBadExtensions(t *testing.T) {
	now := time.Now()
	for _, bad := range []string{"run.exe", "notes.txt", "archive.tar.gz", "noextension"} {
		if _, err := ProductImageName(bad, now); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("%s: expected ErrInvalidExtension, got %v", bad, err)
		}
	}
}
