package api

import (
	"net/http"

	"github.com/juju/errors"

	"github.com/9seconds/clientgeo/geodb"
)

type errorResponse struct {
	Error string `json:"error"`
}

const (
	resultOK        = "ok"
	resultInvalid   = "invalid_address"
	resultNotFound  = "not_found"
	resultIOFailure = "io_failure"
	resultUnknown   = "error"
)

func classifyError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, resultOK
	case errors.IsNotValid(err):
		return http.StatusBadRequest, resultInvalid
	case errors.IsNotFound(err):
		return http.StatusNotFound, resultNotFound
	case geodb.IsIOFailure(err):
		return http.StatusInternalServerError, resultIOFailure
	}

	return http.StatusInternalServerError, resultUnknown
}
