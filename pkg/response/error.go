package response

import (
	"net/http"

	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/log"
	"github.com/Nascian/socialnetwork-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error writes err as {"message": ...} with the status of its kind.
// Internal errors are logged with their cause and never exposed.
func Error(c *gin.Context, err error) {
	e := errs.From(err)
	if e.Kind == errs.KindInternal {
		log.L.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Error(err),
		)
	}
	Fail(c, e.StatusCode(), e.Message)
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// ErrorMiddleware turns panics and errors pushed with c.Error into the
// standard error body.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("trace", utils.PanicTrace(r, 0)),
				)
				Abort(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			Error(c, c.Errors.Last().Err)
			c.Abort()
		}
	}
}
