package dto

// APIResponse is the uniform response envelope. Success responses carry Data;
// error responses omit it and set Success to false.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// NewAPIResponse builds a success envelope.
func NewAPIResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// NewAPIError builds an error envelope.
func NewAPIError(statusCode int, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	}
}
