package template

import "errors"

var (
	ErrTemplateNotFound = errors.New("no default active template")
	ErrInvalidKind      = errors.New("invalid report kind")
)
