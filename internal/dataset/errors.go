package dataset

import "errors"

// Sentinel errors for dataset loading.
var (
	// ErrUnsupportedFormat indicates the uploaded file has an extension
	// that no parser handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyFile indicates the uploaded file contains no header row.
	ErrEmptyFile = errors.New("uploaded file is empty")
)
