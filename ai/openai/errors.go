package openai

import "errors"

// ErrMalformedResponse indicates the model returned output that could not be
// interpreted as the requested structure. Callers treat this the same as a
// call failure and fall back.
var ErrMalformedResponse = errors.New("malformed model response")
