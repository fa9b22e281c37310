package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	// ErrInvalidMedia indicates an unsupported or undecodable image payload.
	ErrInvalidMedia = errors.New("invalid image")
	// ErrUploadFailed indicates a storage/transport failure while uploading.
	ErrUploadFailed = errors.New("image upload failed")
)

// Gateway stores article images and resolves their retrieval URLs.
type Gateway interface {
	// Upload validates and stores raw image bytes and returns the stable
	// retrieval URL of the stored object.
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
	// ResolveURL deterministically constructs the retrieval URL for a
	// previously stored file name. No network call, no existence check.
	ResolveURL(fileName string) string
}

// ObjectStore is the subset of the storage client the gateway needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	ObjectURL(key string) string
}

// ImageFolder is the fixed storage prefix for article images.
const ImageFolder = "blog/data-images"

// ImageSize is the side length of the fixed square transformation applied on
// upload.
const ImageSize = 500

type objectGateway struct {
	store  ObjectStore
	folder string
	now    func() time.Time
}

// NewGateway returns a Gateway backed by the given object store.
func NewGateway(store ObjectStore) Gateway {
	return &objectGateway{store: store, folder: ImageFolder, now: time.Now}
}

func (g *objectGateway) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	ext, ok := allowedSubtype(mimeType)
	if !ok {
		return "", ErrInvalidMedia
	}
	out, err := transform(data, ImageSize)
	if err != nil {
		// declared type was fine but the bytes are not a decodable image
		return "", fmt.Errorf("%w: %v", ErrInvalidMedia, err)
	}
	key := fmt.Sprintf("%s/%d.%s", g.folder, g.now().UnixNano(), ext)
	if err := g.store.Upload(ctx, key, bytes.NewReader(out), int64(len(out)), mimeType); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return g.store.ObjectURL(key), nil
}

func (g *objectGateway) ResolveURL(fileName string) string {
	return g.store.ObjectURL(g.folder + "/" + fileName)
}

// allowedSubtype extracts the MIME subtype and reports whether it is one of
// the accepted image formats.
func allowedSubtype(mimeType string) (string, bool) {
	_, sub, ok := strings.Cut(mimeType, "/")
	if !ok {
		return "", false
	}
	sub = strings.ToLower(sub)
	switch sub {
	case "png", "jpg", "jpeg", "gif":
		return sub, true
	}
	return "", false
}
