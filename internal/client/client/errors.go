package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/reomoon/memo/internal/netx"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrUpstream     = errors.New("upstream failure")
)

// mapError turns transport and status errors into the sentinels above,
// keeping the server message for display.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var se *netx.StatusError
	if !errors.As(err, &se) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	msg := se.Message
	if msg == "" {
		msg = se.Status
	}

	switch {
	case se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case se.StatusCode >= 400 && se.StatusCode < 500:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("%w: %s", ErrUpstream, msg)
	}
}
