package handler

import (
	"time"

	"github.com/Nascian/socialnetwork-backend/pkg/response"
	"github.com/Nascian/socialnetwork-backend/types"

	"github.com/gin-gonic/gin"
)

type Health struct{}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", h.Check)
}

func (h *Health) Check(c *gin.Context) {
	response.Success(c, types.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
