package catalog

import "errors"

var (
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrFailedToParseFile = errors.New("failed to parse catalog file")
	ErrEmptyCatalog      = errors.New("catalog file defines no roles")
)
