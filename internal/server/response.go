package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	neograph "github.com/saulfrancisco-ruizacevedo/go-neograph"
)

// errorBody is the JSON body of every failed request.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// failure pairs an analyzer sentinel with the status and code it is reported as.
type failure struct {
	target error
	status int
	code   string
}

// failures is matched in order; the first sentinel found in the chain wins.
var failures = []failure{
	{neograph.ErrInvalidAddressList, http.StatusBadRequest, "invalid_address_list"},
	{neograph.ErrUnknownCategory, http.StatusBadRequest, "unknown_category"},
	{neograph.ErrNotFound, http.StatusNotFound, "not_found"},
	{neograph.ErrQuery, http.StatusBadGateway, "database_error"},
	{neograph.ErrConnection, http.StatusBadGateway, "database_error"},
}

var internalFailure = failure{status: http.StatusInternalServerError, code: "internal_error"}

func classify(err error) failure {
	for _, f := range failures {
		if errors.Is(err, f.target) {
			return f
		}
	}
	return internalFailure
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   err.Error(),
		RequestID: c.GetString(requestIDKey),
	}})
}

func writeJSON(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
