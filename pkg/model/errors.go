package model

import "fmt"

// ConfigurationError reports a catalog that cannot be scheduled at all (e.g. a required subject nobody can teach).
// It is fatal: no search is started on such a catalog.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (err *ConfigurationError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid catalog: %v: %v", err.Reason, err.Err)
	}
	return fmt.Sprintf("invalid catalog: %v", err.Reason)
}

func (err *ConfigurationError) Unwrap() error {
	return err.Err
}

func configurationErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
