package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Outbound mail dispatch errors. These classify failures of the hosted email
// API the relay endpoint depends on.
var (
	ErrDispatchUnavailable = errors.New("mail dispatch service unavailable")
	ErrDispatchRejected    = errors.New("mail dispatch rejected")
	ErrInvalidAPIKey       = errors.New("invalid API key")
	ErrRateLimitExceeded   = errors.New("rate limit exceeded")
)

// NewDispatchError maps a mail dispatch API status code onto an ApiErr. The
// relay endpoint always surfaces these to the visitor as a generic 500; the
// classification is for logs.
func NewDispatchError(statusCode int, message string) *ApiErr {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        ErrInvalidAPIKey,
			Details:    message,
		}
	case http.StatusTooManyRequests:
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrRateLimitExceeded,
			Details:    message,
		}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrDispatchUnavailable,
			Details:    message,
		}
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDispatchRejected,
		Details:    fmt.Sprintf("status %d: %s", statusCode, message),
	}
}

func IsDispatchUnavailable(err error) bool {
	return errors.Is(err, ErrDispatchUnavailable)
}

func IsRateLimitExceeded(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}
