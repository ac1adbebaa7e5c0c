package blobstore

import "errors"

var (
	// ErrUploadFailed возвращается, когда blob-хранилище отклонило загрузку
	ErrUploadFailed = errors.New("blobstore: upload failed")

	// ErrNotConfigured возвращается, когда хранилище не сконфигурировано
	ErrNotConfigured = errors.New("blobstore: storage is not configured")
)
