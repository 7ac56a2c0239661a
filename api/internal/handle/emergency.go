package handle

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crop-doctor/api/internal/apperr"
	"crop-doctor/api/internal/store"
	"crop-doctor/api/internal/util"
)

type emergencyResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// Emergency records a support request; an attached photo goes to the blob
// store first so the record can reference it.
func (h *Handle) Emergency(c *gin.Context) {
	if h.emergencies == nil {
		respondError(c, apperr.Configuration("database not configured (DATABASE_URL)"))
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	issue := strings.TrimSpace(c.PostForm("issue"))
	if name == "" || phone == "" || issue == "" {
		respondValidation(c, "name, phone, and issue are required")
		return
	}

	var imageRef *store.ImageRef
	if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
		if h.blobs == nil {
			respondError(c, apperr.Configuration("storage bucket not configured (STORAGE_BUCKET)"))
			return
		}
		f, err := file.Open()
		if err != nil {
			respondValidation(c, "unreadable image file")
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			respondValidation(c, "unreadable image file")
			return
		}
		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = util.SniffMimeHTTP(data)
		}
		info, err := h.blobs.Upload(c.Request.Context(), file.Filename, contentType, data)
		if err != nil {
			h.log.Errorw("emergency image upload failed", "filename", file.Filename, "err", err)
			respondError(c, apperr.Oracle("failed to upload image", err))
			return
		}
		imageRef = &store.ImageRef{
			Bucket:      info.Bucket,
			Path:        info.Path,
			ContentType: info.ContentType,
			GSURI:       info.GSURI,
		}
	}

	id, err := h.emergencies.Insert(c.Request.Context(), name, phone, issue, imageRef,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.log.Errorw("emergency insert failed", "err", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emergencyResponse{OK: true, ID: id})
}
