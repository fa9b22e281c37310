package media

import "context"

// FakeGateway is a Gateway double for handler tests. It records uploads and
// returns a fixed URL.
type FakeGateway struct {
	URL      string
	Err      error
	Uploads  int
	LastMIME string
}

func (f *FakeGateway) Upload(_ context.Context, _ []byte, mimeType string) (string, error) {
	if _, ok := allowedSubtype(mimeType); !ok {
		return "", ErrInvalidMedia
	}
	if f.Err != nil {
		return "", f.Err
	}
	f.Uploads++
	f.LastMIME = mimeType
	return f.URL, nil
}

func (f *FakeGateway) ResolveURL(fileName string) string {
	return f.URL + "/" + fileName
}
