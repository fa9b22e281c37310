package media

import "context"

// Disabled is a Gateway used when no object store is configured: uploads fail
// with ErrUploadFailed and URL resolution returns an empty string. Lets the
// API run (and be developed against) without a MinIO deployment.
type Disabled struct{}

func (Disabled) Upload(_ context.Context, _ []byte, mimeType string) (string, error) {
	if _, ok := allowedSubtype(mimeType); !ok {
		return "", ErrInvalidMedia
	}
	return "", ErrUploadFailed
}

func (Disabled) ResolveURL(string) string { return "" }
