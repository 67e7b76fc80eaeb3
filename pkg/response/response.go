package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the body of every error reply.
type Response struct {
	Message string `json:"message"`
}

// Success writes data as the raw 200 body.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{Message: msg})
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{Message: msg})
}
