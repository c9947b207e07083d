package common

import "fmt"

// InputError reports an unusable photos directory or output path.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("Input Error: %s", e.Message)
}

type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Configuration Error: %s", e.Message)
}

// PublishError reports a failed report upload.
type PublishError struct {
	Message string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("Publish Error: %s", e.Message)
}

func NewInputError(format string, v ...interface{}) error {
	return &InputError{Message: fmt.Sprintf(format, v...)}
}

func NewConfigError(format string, v ...interface{}) error {
	return &ConfigError{Message: fmt.Sprintf(format, v...)}
}

func NewPublishError(format string, v ...interface{}) error {
	return &PublishError{Message: fmt.Sprintf(format, v...)}
}
