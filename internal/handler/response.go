package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/medatlas/directory-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// AbortWithError writes the error envelope, mapping application error
// codes to HTTP statuses. Unrecognized errors become a 500.
func AbortWithError(c *gin.Context, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		appErr = apperrors.NewInternal(err)
	}
	c.JSON(appErr.Code.HTTPStatus(), NewErrorResponse(appErr.Message))
}
