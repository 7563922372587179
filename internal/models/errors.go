package models

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrSettingsNotFound = errors.New("site settings not found")
)
