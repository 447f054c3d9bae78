package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contentTypeJSON = "application/json"

// Envelope is the response shape shared by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data any) {
	JSON(c, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data any) {
	JSON(c, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Raw relays an already-encoded JSON body untouched. A nil body writes headers only.
func Raw(c *gin.Context, status int, body []byte) {
	c.Data(status, contentTypeJSON, body)
}
