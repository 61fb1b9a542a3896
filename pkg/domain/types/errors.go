package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrInvalidEvent     = goerr.New("invalid event payload")
	ErrAssetNotFound    = goerr.New("asset not found")
	ErrTaskNotFound     = goerr.New("ingestion task not found")
	ErrIgnoredEvent     = goerr.New("event is not an object creation")
)
