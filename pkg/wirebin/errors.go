package wirebin

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData reports a fixed-size header or payload that
	// extends past the end of the input.
	ErrInsufficientData = errors.New("wirebin: insufficient data")

	// ErrOversizedLength reports a length field that claims more bytes
	// than remain in the input buffer.
	ErrOversizedLength = errors.New("wirebin: oversized length")

	// ErrAllocationFailure reports that the output buffer could not grow.
	ErrAllocationFailure = errors.New("wirebin: allocation failure")

	// ErrRecursionLimit reports a value tree nested deeper than the
	// configured maximum.
	ErrRecursionLimit = errors.New("wirebin: recursion limit exceeded")

	// ErrUnsupportedType reports a value with no encoding rule and no
	// permitted extension path, or an unrecognized tag on decode.
	ErrUnsupportedType = errors.New("wirebin: unsupported type")

	// ErrWhitelistRejected reports an extension-path encode attempt for a
	// kind that is not on the whitelist.
	ErrWhitelistRejected = errors.New("wirebin: type not whitelisted")

	// ErrMalformedUTF8 reports a Utf8String payload that is not valid UTF-8.
	ErrMalformedUTF8 = errors.New("wirebin: malformed utf-8")

	// ErrExtensionCodec reports a failure inside the extension codec's
	// Dump or Load.
	ErrExtensionCodec = errors.New("wirebin: extension codec failure")

	// ErrCallback reports a progress callback that returned an error.
	ErrCallback = errors.New("wirebin: progress callback failure")
)

// wrapf attaches formatted context to one of the sentinel errors above so
// callers can still match with errors.Is.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
