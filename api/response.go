package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Every /api route answers with this envelope.
type response struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     any       `json:"error,omitempty"`
}

func newResponse(data any) response {
	return response{
		Success:   true,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

func newErrorResponse(detail any) response {
	return response{
		Success:   false,
		Timestamp: time.Now().UTC(),
		Error:     detail,
	}
}

func (resp response) Serve(c *gin.Context, statuses ...int) {
	status := http.StatusOK
	if len(statuses) > 0 {
		status = statuses[0]
	}
	if resp.Success {
		c.JSON(status, resp)
		return
	}
	c.AbortWithStatusJSON(status, resp)
}
