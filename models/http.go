package models

// Response is the envelope wrapping every JSON reply of the API.
//
// Data and Error are mutually exclusive: a response built with [Success]
// carries only Data, a response built with [Failure] carries only Error.
// Construct responses exclusively through those two functions; the zero
// value is not a valid response.
type Response struct {
	// Success reports whether the request was handled without errors.
	Success bool `json:"success"`

	// Data holds the operation result. Omitted on failure.
	Data any `json:"data,omitempty"`

	// Error is a human-readable description of what went wrong.
	// Omitted on success.
	Error string `json:"error,omitempty"`
}

// Success wraps data in a successful response envelope.
func Success(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Failure wraps an error message in a failed response envelope.
func Failure(msg string) Response {
	return Response{
		Success: false,
		Error:   msg,
	}
}
