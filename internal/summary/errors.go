package summary

import "errors"

var ErrSummaryRequired = errors.New("summary is required")
