package extract

import "fmt"

// ErrorCodeNetwork marks errors raised by transport failures rather
// than an API response.
const ErrorCodeNetwork = "NETWORK_ERROR"

// APIError is an error response from the extraction API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d, code %v): %v", e.Status, e.Code, e.Message)
}

// UserMessage maps the error to a short message suitable for end users.
func (e *APIError) UserMessage() string {
	switch e.Status {
	case 400:
		return "Invalid request. Please check your input text."
	case 401:
		return "Authentication failed. Please check the API key."
	case 403:
		return "API quota exceeded. Please try again later."
	case 429:
		return "Too many requests. Please wait a moment and try again."
	case 500:
		return "Server error. Please try again later."
	default:
		if e.Code == ErrorCodeNetwork {
			return "Network error. Please check your internet connection and try again."
		}
		return fmt.Sprintf("An error occurred: %v", e.Message)
	}
}

// ValidationError reports invalid input rejected before any API call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", e.Message)
}
