package repository

import "errors"

var (
	ErrTemplateFileRead   = errors.New("repository: failed to read template file")
	ErrTemplateFileDecode = errors.New("repository: failed to decode template file")
	ErrTemplateInvalid    = errors.New("repository: invalid template")
)
