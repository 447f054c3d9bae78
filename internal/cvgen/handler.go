package cvgen

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/extract"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

const (
	msgGenerated       = "CV generated successfully with AI"
	msgRequiredFields  = "Name and email are required"
	msgGenerateFailed  = "Failed to generate CV"
	msgParsed          = "CV parsed successfully"
	msgNoFile          = "No file provided"
	msgInvalidFileType = "Invalid file type. Please upload PDF, DOC, or DOCX"
	msgParseFailed     = "Failed to parse CV"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches CV generation routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/cv/generate", h.generate)
	rg.POST("/cv/parse", h.parse)
}

func (h *Handler) generate(c *gin.Context) {
	start := time.Now()

	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		metrics.ObserveGeneration("error", time.Since(start))
		respond.Error(c, http.StatusInternalServerError, msgGenerateFailed, fmt.Errorf("decode body: %w", err))
		return
	}

	record, err := h.Svc.Generate(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			metrics.ObserveGeneration("invalid", time.Since(start))
			respond.Error(c, http.StatusBadRequest, msgRequiredFields, nil)
		default:
			metrics.ObserveGeneration("error", time.Since(start))
			respond.Error(c, http.StatusInternalServerError, msgGenerateFailed, err)
		}
		return
	}

	metrics.ObserveGeneration("success", time.Since(start))
	respond.OK(c, msgGenerated, record)
}

func (h *Handler) parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, msgNoFile, nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !extract.Accepted(mimeType) {
		respond.Error(c, http.StatusBadRequest, msgInvalidFileType, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, msgParseFailed, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, msgParseFailed, err)
		return
	}

	text, err := extract.Text(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, msgParseFailed, err)
		return
	}

	parsed, err := h.Svc.Parse(c.Request.Context(), text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, msgParseFailed, err)
		return
	}

	respond.OK(c, msgParsed, parsed)
}
