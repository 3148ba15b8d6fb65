package report

import "errors"

var (
	// ErrNoData indicates a successful response with nothing to chart, for
	// reports where an empty result is meaningful.
	ErrNoData = errors.New("report has no data")

	// ErrSchema indicates a response row that does not fit the report's columns.
	ErrSchema = errors.New("report row does not match schema")

	// ErrUnknownReport indicates a report kind with no definition.
	ErrUnknownReport = errors.New("unknown report")

	// ErrInvalidInterval indicates a time value that could not be parsed.
	ErrInvalidInterval = errors.New("invalid interval")
)
