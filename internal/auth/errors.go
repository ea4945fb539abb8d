package auth

import "errors"

var (
	ErrUnknownKind      = errors.New("unrecognized auth type")
	ErrNotImplemented   = errors.New("auth type not implemented")
	ErrTokenAcquisition = errors.New("failed to acquire token")
)
