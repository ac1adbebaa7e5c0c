package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	putKey    string
	putType   string
	putBody   string
	deleteKey string
	putErr    error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKey = *params.Key
	f.putType = *params.ContentType
	body, _ := io.ReadAll(params.Body)
	f.putBody = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteKey = *params.Key
	return &s3.DeleteObjectOutput{}, nil
}

func TestStore_Upload(t *testing.T) {
	fake := &fakeS3{}
	store := NewStore(fake, "gallery", "https://cdn.example.com/")

	url, err := store.Upload(context.Background(), "5/1700000000.jpg", "image/jpeg", strings.NewReader("bytes"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/5/1700000000.jpg", url)
	assert.Equal(t, "5/1700000000.jpg", fake.putKey)
	assert.Equal(t, "image/jpeg", fake.putType)
	assert.Equal(t, "bytes", fake.putBody)
}

func TestStore_Upload_Error(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("denied")}
	store := NewStore(fake, "gallery", "https://cdn.example.com")

	_, err := store.Upload(context.Background(), "k", "image/png", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestStore_NotConfigured(t *testing.T) {
	var store *Store
	_, err := store.Upload(context.Background(), "k", "image/png", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStore_Delete(t *testing.T) {
	fake := &fakeS3{}
	store := NewStore(fake, "gallery", "https://cdn.example.com")

	require.NoError(t, store.Delete(context.Background(), "5/old.jpg"))
	assert.Equal(t, "5/old.jpg", fake.deleteKey)
}
