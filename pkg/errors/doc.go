// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "taskflow definition is not a JSON object",
//	    cause,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
//
// CodeOf recovers the code from anywhere in a wrapped chain, and
// CodeForStatus classifies an HTTP status returned by the API server.
package errors
