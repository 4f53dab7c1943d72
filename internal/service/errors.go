package service

import "errors"

var (
	// ErrUnknownFolder is returned for folder names outside the fixed set or
	// with no configured path.
	ErrUnknownFolder = errors.New("unknown folder")

	// ErrFolderNotFound is returned when a configured folder path does not
	// exist or is not a directory.
	ErrFolderNotFound = errors.New("folder path not found")

	// ErrReportUnavailable is returned when no report generator is wired in.
	ErrReportUnavailable = errors.New("report generation not available")

	// ErrNothingToReport is returned when the generator finds no history to
	// report on.
	ErrNothingToReport = errors.New("no history to report")
)
