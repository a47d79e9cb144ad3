package pkg_error

import (
	"errors"
)

// Custom error
var (
	// Buffer messages
	ErrorNewFile    = errors.New("(New file)")
	ErrorLoadedFile = errors.New("(Loaded)")

	// Persistence
	ErrLoad                = errors.New("load failed")
	ErrSave                = errors.New("save failed")
	ErrReadonly            = errors.New("file is read-only")
	ErrNoPath              = errors.New("no file name")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// Search
	ErrInvalidQuery = errors.New("invalid search pattern")
	ErrNotFound     = errors.New("not found")

	// Configuration
	ErrConfig = errors.New("invalid configuration")
)
