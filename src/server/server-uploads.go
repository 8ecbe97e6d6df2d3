package server

import (
	"net/http"

	. "github.com/knightsbridge-digital/intake/src/utils/logger"

	"github.com/knightsbridge-digital/intake/src/server/response"

	"github.com/gin-gonic/gin"
)

func (self *Server) onUploadDocument(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, self.Config.Rest.MaxUploadSize)

	fieldName := c.Param("field")

	header, err := c.FormFile("file")
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to read uploaded file")
		return
	}

	file, err := header.Open()
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to open uploaded file")
		return
	}
	defer file.Close()

	saved, err := self.fileStore.Save(fieldName, header.Filename, file)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to store uploaded file")
		return
	}

	originalFilename := header.Filename
	if originalFilename == "" {
		originalFilename = "unknown"
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	LOG(c).WithField("field", fieldName).
		WithField("path", saved.Path).
		WithField("size", saved.Size).
		Debug("Stored uploaded document")

	c.JSON(http.StatusCreated, &response.Upload{
		FieldName:        fieldName,
		OriginalFilename: originalFilename,
		FilePath:         saved.Path,
		FileSize:         saved.Size,
		MimeType:         mimeType,
		Url:              saved.PublicUrl,
	})
}

func (self *Server) onDeleteDocument(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		LOGE(c, nil, http.StatusBadRequest).Debug("Delete request without a path")
		return
	}

	err := self.fileStore.Delete(path)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to delete uploaded file")
		return
	}

	c.Status(http.StatusOK)
}
