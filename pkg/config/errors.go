package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingFile is returned when a config or dotenv file cannot be read
	ErrReadingFile = errors.New("failed to read config file")

	// ErrDecodingFile is returned when a YAML config file is malformed or has unknown keys
	ErrDecodingFile = errors.New("failed to decode config file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
