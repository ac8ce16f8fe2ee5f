package http

import (
	"errors"
	"net/http"

	"github.com/safebite/safebite/internal/gateway"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongDeviceSecret:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	policy.ErrAuthenticationRequired: http.StatusUnauthorized,
	policy.ErrPermissionDenied:       http.StatusForbidden,

	gateway.ErrRemoteService: http.StatusBadGateway,

	store.ErrNoUserWasFound:   http.StatusNotFound,
	store.ErrProfileNotFound:  http.StatusNotFound,
	store.ErrAllergenNotFound: http.StatusNotFound,
	store.ErrLogNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
