package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFilePath   = errors.New("no file path provided")
	ErrRecordNotFound    = errors.New("processed image not found")
	ErrAlreadyProcessing = errors.New("file is already being processed")
)

type TransferError struct {
	FileName string
	Err      error
}

func (e *TransferError) Error() string {
	return e.Err.Error()
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// ClassifierStatusError is returned when the classifier answers with a
// non-200 status. Body holds the response body verbatim.
type ClassifierStatusError struct {
	StatusCode int
	Body       string
}

func (e *ClassifierStatusError) Error() string {
	return fmt.Sprintf("classifier responded with status %d: %s", e.StatusCode, e.Body)
}
