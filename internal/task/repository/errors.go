package repository

import "errors"

var (
	ErrFailedToSave = errors.New("write task file")
	ErrFailedToLoad = errors.New("read task file")
)
