package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeStorage struct {
	deleted   []string
	deleteErr error
}

func (f *fakeStorage) UploadFile(ctx context.Context, path, folder string) (string, error) {
	return "https://cdn.example.com/" + folder, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

func deleteImage(h *StorageHandler, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, target, nil)
	h.DeleteImageHandler(c)
	return w
}

func TestDeleteImageHandler(t *testing.T) {
	t.Run("removes the asset by public ID", func(t *testing.T) {
		store := &fakeStorage{}
		w := deleteImage(NewStorageHandler(store), "/api/storage?public_id=freesetu/providers/p1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"freesetu/providers/p1"}, store.deleted)
	})

	t.Run("requires a public ID", func(t *testing.T) {
		store := &fakeStorage{}
		w := deleteImage(NewStorageHandler(store), "/api/storage")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.deleted)
	})

	t.Run("maps CDN failures to bad gateway", func(t *testing.T) {
		store := &fakeStorage{deleteErr: errors.New("cdn down")}
		w := deleteImage(NewStorageHandler(store), "/api/storage?public_id=freesetu/misc/x")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("rejects when storage is not configured", func(t *testing.T) {
		w := deleteImage(NewStorageHandler(nil), "/api/storage?public_id=freesetu/misc/x")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
