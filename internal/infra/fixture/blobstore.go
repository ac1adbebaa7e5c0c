package fixture

import (
	"context"
	"io"
	"strings"
)

// BlobStore fabricates stable public URLs without persisting bytes.
// Demo mode has no object storage behind it.
type BlobStore struct {
	baseURL string
}

func NewBlobStore(baseURL string) *BlobStore {
	return &BlobStore{baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *BlobStore) Upload(_ context.Context, key, _ string, body io.Reader) (string, error) {
	// Тело вычитывается, чтобы поведение совпадало с реальным стором.
	_, _ = io.Copy(io.Discard, body)
	return s.baseURL + "/" + key, nil
}

func (s *BlobStore) Delete(_ context.Context, _ string) error {
	return nil
}
