package jobs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/respond"
)

const (
	msgConnectFailed = "Failed to connect to backend"
	msgUpdateFailed  = "Failed to update job"
	msgDeleteFailed  = "Failed to delete job"
	msgDeleted       = "Job deleted successfully"

	itemPrefix = "/jobs/"
)

// Forwarder performs one upstream round trip.
type Forwarder interface {
	Forward(ctx context.Context, req ProxyRequest) (ProxyResponse, error)
}

type operation struct {
	name    string
	failure string
}

var (
	opList   = operation{name: "list", failure: msgConnectFailed}
	opGet    = operation{name: "get", failure: msgConnectFailed}
	opCreate = operation{name: "create", failure: msgConnectFailed}
	opUpdate = operation{name: "update", failure: msgUpdateFailed}
	opDelete = operation{name: "delete", failure: msgDeleteFailed}
)

// Handler exposes the job proxy routes.
type Handler struct {
	Upstream Forwarder
}

// NewHandler constructs a Handler.
func NewHandler(upstream Forwarder) *Handler {
	return &Handler{Upstream: upstream}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/jobs", h.list)
	rg.POST("/jobs", h.create)
	rg.GET("/jobs/:id", h.get)
	rg.PUT("/jobs/:id", h.update)
	rg.DELETE("/jobs/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	h.relay(c, opList, ProxyRequest{
		Method:       http.MethodGet,
		ResourcePath: collectionPath,
		Query:        c.Request.URL.RawQuery,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := jobID(c)
	c.Set("jobId", id)
	h.relay(c, opGet, ProxyRequest{
		Method:       http.MethodGet,
		ResourcePath: itemPath(id),
	})
}

func (h *Handler) create(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, opCreate.failure, err)
		return
	}
	h.relay(c, opCreate, ProxyRequest{
		Method:       http.MethodPost,
		ResourcePath: collectionPath,
		AuthHeader:   c.GetHeader("Authorization"),
		Body:         body,
	})
}

func (h *Handler) update(c *gin.Context) {
	id := jobID(c)
	c.Set("jobId", id)
	body, err := readBody(c)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, opUpdate.failure, err)
		return
	}
	h.relay(c, opUpdate, ProxyRequest{
		Method:       http.MethodPut,
		ResourcePath: itemPath(id),
		AuthHeader:   c.GetHeader("Authorization"),
		Body:         body,
	})
}

func (h *Handler) remove(c *gin.Context) {
	id := jobID(c)
	c.Set("jobId", id)
	resp, ok := h.roundTrip(c, opDelete, ProxyRequest{
		Method:       http.MethodDelete,
		ResourcePath: itemPath(id),
		AuthHeader:   c.GetHeader("Authorization"),
	})
	if !ok {
		return
	}
	// 204 carries nothing to relay; answer with the uniform success shape.
	if resp.StatusCode == http.StatusNoContent {
		respond.JSON(c, http.StatusOK, respond.Envelope{Success: true, Message: msgDeleted})
		return
	}
	respond.Raw(c, resp.StatusCode, resp.Body)
}

func (h *Handler) relay(c *gin.Context, op operation, req ProxyRequest) {
	resp, ok := h.roundTrip(c, op, req)
	if !ok {
		return
	}
	respond.Raw(c, resp.StatusCode, resp.Body)
}

func (h *Handler) roundTrip(c *gin.Context, op operation, req ProxyRequest) (ProxyResponse, bool) {
	c.Set("operation", op.name)
	start := time.Now()
	resp, err := h.Upstream.Forward(c.Request.Context(), req)
	metrics.ObserveProxy(op.name, resp.StatusCode, time.Since(start))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, op.failure, err)
		return ProxyResponse{}, false
	}
	return resp, true
}

// jobID returns the id segment exactly as the caller escaped it. The decoded
// route param loses escapes whenever Go leaves RawPath unset.
func jobID(c *gin.Context) string {
	escaped := c.Request.URL.EscapedPath()
	if i := strings.Index(escaped, itemPrefix); i >= 0 {
		return escaped[i+len(itemPrefix):]
	}
	return url.PathEscape(c.Param("id"))
}

func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}
