package models

import (
	"errors"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrClassification  = errors.New("classification failed")
	ErrMediaFetch      = errors.New("media fetch failed")
	ErrInvalidCategory = errors.New("invalid category")
	ErrDispatch        = errors.New("dispatch failed")
)
