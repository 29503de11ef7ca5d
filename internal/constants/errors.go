package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no agent token configured, use 'stcli login' or 'stcli register' first")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrEmptyToken        = errors.New("token must not be empty")
)

// Output errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
