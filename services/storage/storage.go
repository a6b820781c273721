package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService abstracts the hosted image/file store.
type StorageService interface {
	// UploadFile uploads the file at path into folder and returns the
	// public URL of the stored asset.
	UploadFile(ctx context.Context, path, folder string) (string, error)
	// DeleteFile removes a stored asset by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

// NewStorageService wraps an initialized Cloudinary client.
func NewStorageService(client *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorage{client: client}
}

// UploadFile uploads the file at path into folder.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, path, folder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, path, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload %s: %w", path, err)
	}
	return resp.SecureURL, nil
}

// DeleteFile removes a stored asset by its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete %s: %w", publicID, err)
	}
	return nil
}
