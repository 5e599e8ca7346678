// Package errors provides the structured error type shared by the stream
// engines and the tooling around them.
//
// Every failure carries a machine-readable ErrorCode so callers can branch on
// the kind of misuse without matching message text:
//
//	if errors.Is(err, errors.ErrAlreadyLinked) {
//	    // a second combinator was attached to the same stage
//	}
package errors
