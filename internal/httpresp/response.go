package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// Notice reports a successful no-op, e.g. following a cancellation
// link for a booking that is already cancelled.
func Notice(c *gin.Context, code, message string) {
	c.JSON(http.StatusOK, gin.H{
		"notice":  code,
		"message": message,
	})
}
