// Package abi models the boundary the spec's (out-of-scope) external C ABI
// collaborator exposes (§4.16, §6, C16): a small fixed exit-code enum plus
// a "thread-local" last-error message, the shape a C caller across an FFI
// boundary can actually consume (no typed Go errors, no panics crossing
// the boundary). Grounded on hivekit's bindings/wrapper.go, which performs
// the mirror-image flattening — recovering panics out of cgo-generated
// bindings into Go errors. Here the direction reverses: Go's own typed
// errors (types.Error) flatten down into the enum + string pair a C ABI
// would hand back to its caller.
package abi

import (
	"sync"

	"github.com/kesselring/dartbuf/types"
)

// ExitCode is the small fixed result code an external C caller checks
// before consulting the last-error string (§4.16, §6).
type ExitCode int

const (
	NoError ExitCode = iota
	TypeError
	LogicError
	StateError
	ParseError
	RuntimeError
	ClientError
	UnknownError
)

func (c ExitCode) String() string {
	switch c {
	case NoError:
		return "NO_ERROR"
	case TypeError:
		return "TYPE_ERROR"
	case LogicError:
		return "LOGIC_ERROR"
	case StateError:
		return "STATE_ERROR"
	case ParseError:
		return "PARSE_ERROR"
	case RuntimeError:
		return "RUNTIME_ERROR"
	case ClientError:
		return "CLIENT_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// lastError is the nearest idiomatic Go equivalent of C thread-local
// storage: Go has no true TLS, so the last-error slot is keyed by the
// calling goroutine's identity instead (recovered from its stack trace,
// the same trick runtime introspection libraries use when a true
// goroutine-local isn't exposed by the runtime).
var lastError sync.Map // goroutineID -> string

// Flatten maps err onto the matching ExitCode and records its message in
// the calling goroutine's last-error slot, returning both. A nil err
// flattens to (NoError, "") and clears the slot.
func Flatten(err error) (ExitCode, string) {
	if err == nil {
		lastError.Delete(goroutineID())
		return NoError, ""
	}

	msg := err.Error()
	code := codeFor(err)
	lastError.Store(goroutineID(), msg)
	return code, msg
}

// LastError returns the calling goroutine's most recently flattened error
// message, or "" if none is set.
func LastError() string {
	v, ok := lastError.Load(goroutineID())
	if !ok {
		return ""
	}
	return v.(string)
}

func codeFor(err error) ExitCode {
	var terr *types.Error
	if e, ok := err.(*types.Error); ok {
		terr = e
	} else {
		return RuntimeError
	}

	switch terr.Kind {
	case types.ErrKindTypeMismatch:
		return TypeError
	case types.ErrKindKeyMissing, types.ErrKindIndexOutOfRange, types.ErrKindDuplicateKey:
		return LogicError
	case types.ErrKindStateError:
		return StateError
	case types.ErrKindKeyTooLong, types.ErrKindBufferTooLarge:
		return ClientError
	case types.ErrKindMisalignedBuffer, types.ErrKindValidationFailed:
		return ParseError
	default:
		return UnknownError
	}
}
