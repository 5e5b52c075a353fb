package service

import "errors"

var (
	ErrEmptyTitle   = errors.New("entry title is empty")
	ErrInvalidDay   = errors.New("day is not a valid YYYY-MM-DD date")
	ErrEmptyEntryID = errors.New("entry ID is empty")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
