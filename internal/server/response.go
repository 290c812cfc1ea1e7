package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func badRequest(c *gin.Context, code, message string) {
	abortWithError(c, http.StatusBadRequest, code, message)
}

func notFound(c *gin.Context, message string) {
	abortWithError(c, http.StatusNotFound, "not_found", message)
}

func tooManyRequests(c *gin.Context) {
	abortWithError(c, http.StatusTooManyRequests, "rate_limited", "too many requests")
}

func serverError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Error("render failed",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	)
	abortWithError(c, http.StatusInternalServerError, "render_failed", "page could not be rendered")
}
