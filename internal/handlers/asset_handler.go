package handlers

import (
	"errors"
	"io"
	"net/http"

	"eventdesk/internal/metric"
	"eventdesk/internal/models"

	"github.com/gin-gonic/gin"
)

// UploadAssetHandler accepts a multipart "file" part and appends a new asset
// record for the owner named by ownerParam. The whole payload is buffered in
// memory before persisting; there is no size cap.
func UploadAssetHandler(repo models.AssetsRepo, kind models.AssetKind, ownerParam, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.Param(ownerParam)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.Error(err)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			c.Error(err)
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		id, err := repo.SaveAsset(c.Request.Context(), kind, ownerID, fileHeader.Filename, contentType, content)
		if err != nil {
			c.Error(err)
			return
		}

		metric.AssetUploadBytes.WithLabelValues(kind.Name).Observe(float64(len(content)))
		c.JSON(http.StatusOK, gin.H{"message": message, "id": id.Hex()})
	}
}

// FetchAssetHandler streams back the owner's most recently uploaded asset
// with its stored content type.
func FetchAssetHandler(repo models.AssetsRepo, kind models.AssetKind, ownerParam, notFoundMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.Param(ownerParam)

		asset, err := repo.LatestAsset(c.Request.Context(), kind, ownerID)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": notFoundMessage})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}

		contentType := asset.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Data(http.StatusOK, contentType, asset.Content)
	}
}
