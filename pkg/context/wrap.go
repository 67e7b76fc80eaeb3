package context

import (
	"errors"

	"github.com/Nascian/socialnetwork-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

// Wrap adapts a handler that returns an error. Errors are written with
// response.Error unless the handler already wrote a reply.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			response.Error(c, err)
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not set")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}
