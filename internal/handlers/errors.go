package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorCode string

const (
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeInternal     ErrorCode = "INTERNAL_SERVER_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
)

func (code ErrorCode) httpStatus() int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, code ErrorCode, message string) {
	c.AbortWithStatusJSON(code.httpStatus(), gin.H{
		"error": gin.H{
			"code":    string(code),
			"message": message,
		},
	})
}
