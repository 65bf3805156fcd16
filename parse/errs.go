package parse

import "errors"

// ErrMalformedInput is wrapped by every parse failure: unbalanced
// brackets, a dangling quote, a duplicate key separator, or an invalid
// bare token.
var ErrMalformedInput = errors.New("malformed input")
