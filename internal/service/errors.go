package service

import (
	"errors"

	"docvision/internal/normalize"
)

var (
	// ErrMissingInput reports a required image or field that is absent.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidImage reports an image payload that is not valid base64.
	ErrInvalidImage = errors.New("invalid image payload")
	// ErrUnsupportedMode reports a comparison mode other than "compare".
	ErrUnsupportedMode = errors.New("unsupported mode")
	// ErrMalformedResponse reports backend text that holds no recoverable JSON object.
	ErrMalformedResponse = normalize.ErrMalformedResponse
	// ErrBackendFailure reports a failed inference call (network, auth, quota).
	ErrBackendFailure = errors.New("inference backend failure")
)
