package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sud2610/set-u-free-sub000/services/storage"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadBytes = 8 << 20

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// StorageHandler uploads profile and service images to the CDN.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(s storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: s}
}

// UploadImageHandler handles POST /api/storage/upload. Accepts a multipart
// "file" field plus an optional "folder" and returns the public URL.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Image uploads are not configured")
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file field is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.JSONError(c, http.StatusBadRequest, "File exceeds the 8MB limit")
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		utils.JSONError(c, http.StatusBadRequest, "Only jpg, png and webp images are accepted")
		return
	}

	folder := c.DefaultPostForm("folder", "freesetu/misc")
	tmp := filepath.Join(os.TempDir(), uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fileHeader, tmp); err != nil {
		utils.GetLogger().Error("Failed to buffer upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer os.Remove(tmp)

	url, err := h.Storage.UploadFile(c.Request.Context(), tmp, folder)
	if err != nil {
		utils.GetLogger().Error("CDN upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Upload failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"url": url})
}

// DeleteImageHandler handles DELETE /api/storage. Removes an asset from the
// CDN by its public ID (passed as a query parameter because Cloudinary IDs
// contain slashes). Admin-only; used to scrub images behind removed records.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}
	publicID := c.Query("public_id")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "public_id query parameter is required")
		return
	}
	if err := h.Storage.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.GetLogger().Error("CDN delete failed", zap.String("publicID", publicID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Delete failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": publicID})
}
