package errkind

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ib-77/ropx/pkg/rop"
)

// Classify maps an arbitrary error returned by operation to a CommonError.
// A CommonError anywhere in the chain is returned as is. Unrecognised errors
// become a NetworkError wrapping err. Classify returns nil for a nil err.
func Classify(operation string, err error) CommonError {
	if rop.IsNil(err) {
		return nil
	}

	var ce CommonError
	if errors.As(err, &ce) {
		return ce
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout(operation, 0)
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		numErr    *strconv.NumError
	)
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return Parse(err, "")
	case errors.As(err, &numErr):
		return Parse(err, numErr.Num)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return Timeout(operation, 0)
		}
		return Network(err, urlErr.URL)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout(operation, 0)
	}

	return Network(err, "")
}

// GRPCCode maps a kind to the closest gRPC status code.
func GRPCCode(err CommonError) codes.Code {
	return Match(err, On(
		func(*NetworkError) codes.Code { return codes.Unavailable },
		func(e *HTTPError) codes.Code { return httpToGRPC(e.Status) },
		func(*ValidationError) codes.Code { return codes.InvalidArgument },
		func(*NotFoundError) codes.Code { return codes.NotFound },
		func(*ParseError) codes.Code { return codes.InvalidArgument },
		func(*TimeoutError) codes.Code { return codes.DeadlineExceeded },
	))
}

// Status converts err into a gRPC status carrying its message.
func Status(err CommonError) *status.Status {
	return status.New(GRPCCode(err), err.Error())
}

// HTTPStatus maps a kind to the closest HTTP status code.
func HTTPStatus(err CommonError) int {
	return Match(err, On(
		func(*NetworkError) int { return http.StatusBadGateway },
		func(e *HTTPError) int { return e.Status },
		func(*ValidationError) int { return http.StatusBadRequest },
		func(*NotFoundError) int { return http.StatusNotFound },
		func(*ParseError) int { return http.StatusBadRequest },
		func(*TimeoutError) int { return http.StatusGatewayTimeout },
	))
}

func httpToGRPC(code int) codes.Code {
	switch code {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.AlreadyExists
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return codes.Unavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return codes.DeadlineExceeded
	}
	if code >= 500 {
		return codes.Internal
	}
	return codes.Unknown
}
