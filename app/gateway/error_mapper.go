package gateway

import (
	"errors"
	"net/http"

	"freshmart-client/app/domain"
	"freshmart-client/app/driver/rest"
)

// mapRestError normalizes a rest driver error into the single structured
// error shape UI collaborators see. Domain errors produced further down the
// pipeline (the transport's re-authentication signal in particular) pass
// through untouched.
func mapRestError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var statusErr *rest.StatusError
	if errors.As(err, &statusErr) {
		kind := domain.KindNetwork
		switch {
		case statusErr.StatusCode == http.StatusUnauthorized:
			kind = domain.KindUnauthorized
		case statusErr.StatusCode == http.StatusForbidden:
			kind = domain.KindUnauthorized
		case statusErr.StatusCode == http.StatusNotFound:
			kind = domain.KindNotFound
		case statusErr.StatusCode >= 400 && statusErr.StatusCode < 500:
			kind = domain.KindValidation
		}
		return domain.NewAPIError(kind, statusErr.Message).WithStatus(statusErr.StatusCode).WithCause(err)
	}

	return domain.NewAPIError(domain.KindNetwork, "request failed").WithCause(err)
}
