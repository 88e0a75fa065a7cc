package errkind

import "fmt"

// Handlers holds one handler per kind. It can only be built with On, so a
// missing handler does not compile.
type Handlers[T any] struct {
	network    func(*NetworkError) T
	http       func(*HTTPError) T
	validation func(*ValidationError) T
	notFound   func(*NotFoundError) T
	parse      func(*ParseError) T
	timeout    func(*TimeoutError) T
}

// On builds Handlers from one handler per kind. It panics if any handler is nil.
func On[T any](
	onNetwork func(*NetworkError) T,
	onHTTP func(*HTTPError) T,
	onValidation func(*ValidationError) T,
	onNotFound func(*NotFoundError) T,
	onParse func(*ParseError) T,
	onTimeout func(*TimeoutError) T,
) Handlers[T] {
	h := Handlers[T]{
		network:    onNetwork,
		http:       onHTTP,
		validation: onValidation,
		notFound:   onNotFound,
		parse:      onParse,
		timeout:    onTimeout,
	}
	for tag, missing := range map[Tag]bool{
		TagNetwork:    onNetwork == nil,
		TagHTTP:       onHTTP == nil,
		TagValidation: onValidation == nil,
		TagNotFound:   onNotFound == nil,
		TagParse:      onParse == nil,
		TagTimeout:    onTimeout == nil,
	} {
		if missing {
			panic(fmt.Sprintf("errkind: no handler for %s", tag))
		}
	}
	return h
}

// Match dispatches err to the handler for its kind. It panics on a nil err
// or on Handlers not built with On.
func Match[T any](err CommonError, h Handlers[T]) T {
	if h.network == nil {
		panic("errkind: handlers must be built with On")
	}
	switch e := err.(type) {
	case *NetworkError:
		return h.network(e)
	case *HTTPError:
		return h.http(e)
	case *ValidationError:
		return h.validation(e)
	case *NotFoundError:
		return h.notFound(e)
	case *ParseError:
		return h.parse(e)
	case *TimeoutError:
		return h.timeout(e)
	}
	panic(fmt.Sprintf("errkind: unhandled error %T", err))
}
