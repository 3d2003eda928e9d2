package api

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/auth"
	"github.com/vitrine-app/vitrine/internal/db"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/media"
	"github.com/vitrine-app/vitrine/internal/middleware"
	"github.com/vitrine-app/vitrine/internal/models"
)

// uploadRequestTimeout bounds the whole blob-and-insert sequence
const uploadRequestTimeout = 2 * time.Minute

// Request/Response DTOs

// MediaListResponse represents the dashboard's media grid payload
type MediaListResponse struct {
	Items    []*models.MediaItem `json:"items"`
	Total    int                 `json:"total"`
	Category string              `json:"category"`
}

// UpdateMediaRequest represents an edit of a media item's text fields.
// Type and URLs are immutable after creation and deliberately absent here.
type UpdateMediaRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DeleteResponse represents a successful delete operation
type DeleteResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MediaHandler handles media-related API requests
type MediaHandler struct {
	uploader *media.Uploader
	repos    *db.Repositories
}

// NewMediaHandler creates a new media handler instance
func NewMediaHandler(uploader *media.Uploader, repos *db.Repositories) *MediaHandler {
	return &MediaHandler{
		uploader: uploader,
		repos:    repos,
	}
}

// ListMedia handles GET /api/media?category=all|video|audio|link
func (h *MediaHandler) ListMedia(c *gin.Context) {
	category := c.DefaultQuery("category", models.CategoryAll)
	if !media.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_category",
			Message: "Category must be all, video, audio, or link",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, err := h.repos.MediaItems.List(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to list media items")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve media list",
		})
		return
	}

	filtered := media.FilterByCategory(items, category)

	c.JSON(http.StatusOK, MediaListResponse{
		Items:    filtered,
		Total:    len(filtered),
		Category: category,
	})
}

// GetMedia handles GET /api/media/:id
func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repos.MediaItems.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Media item not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("id", id.String()).
			Msg("Failed to get media item")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve media item",
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateMedia handles POST /api/media (multipart form).
//
// Fields: title, description, type, url; file parts: file, thumbnail.
// Validation failures never reach storage or the database.
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	input := media.UploadInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        models.MediaType(c.PostForm("type")),
		URL:         c.PostForm("url"),
	}

	fileBlob, closeFile, err := formBlob(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Could not read uploaded file",
		})
		return
	}
	if closeFile != nil {
		defer closeFile()
	}
	input.File = fileBlob

	thumbBlob, closeThumb, err := formBlob(c, "thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Could not read uploaded thumbnail",
		})
		return
	}
	if closeThumb != nil {
		defer closeThumb()
	}
	input.Thumbnail = thumbBlob

	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadRequestTimeout)
	defer cancel()

	item, err := h.uploader.Upload(ctx, input)
	if err != nil {
		var ve *media.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_failed",
				Message: ve.Error(),
			})
			return
		}

		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "upload_failed",
			Message: "Failed to upload media item",
		})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateMedia handles PUT /api/media/:id
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repos.MediaItems.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Media item not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("id", id.String()).
			Msg("Failed to get media item for update")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve media item",
		})
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}

	if item.Title == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: "Title cannot be empty",
		})
		return
	}

	if err := h.repos.MediaItems.UpdateDetails(ctx, id, item.Title, item.Description); err != nil {
		logger.Log.Error().
			Err(err).
			Str("id", id.String()).
			Msg("Failed to update media item")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "update_failed",
			Message: "Failed to update media item",
		})
		return
	}

	logger.Log.Info().
		Str("id", id.String()).
		Msg("Media item updated")

	c.JSON(http.StatusOK, item)
}

// DeleteMedia handles DELETE /api/media/:id.
// Stored blobs are not garbage-collected with the row.
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repos.MediaItems.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Media item not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("id", id.String()).
			Msg("Failed to delete media item")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "delete_failed",
			Message: "Failed to delete media item",
		})
		return
	}

	logger.Log.Info().
		Str("id", id.String()).
		Msg("Media item deleted")

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Media item deleted successfully",
	})
}

// parseID validates the :id path parameter, responding 400 on failure
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid media ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// formBlob opens an optional multipart file part. A missing part is not an
// error here; whether it was required is the upload workflow's decision.
func formBlob(c *gin.Context, field string) (*media.Blob, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &media.Blob{
		Filename:    header.Filename,
		ContentType: blobContentType(header),
		Reader:      file,
	}, func() { _ = file.Close() }, nil
}

func blobContentType(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}

// SetupMediaRoutes registers media routes. Reads need a session; writes
// additionally need the admin gate.
func SetupMediaRoutes(apiGroup *gin.RouterGroup, uploader *media.Uploader, repos *db.Repositories, gate *auth.Gate) {
	handler := NewMediaHandler(uploader, repos)

	apiGroup.GET("/media", handler.ListMedia)
	apiGroup.GET("/media/:id", handler.GetMedia)

	adminGroup := apiGroup.Group("", middleware.RequireAdmin(gate))
	adminGroup.POST("/media", handler.CreateMedia)
	adminGroup.PUT("/media/:id", handler.UpdateMedia)
	adminGroup.DELETE("/media/:id", handler.DeleteMedia)
}
