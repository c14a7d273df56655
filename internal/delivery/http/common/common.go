package http_common

// ErrorResponse is the shared failure body. Msg mirrors the historical field
// name some clients still parse.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
	Message string `json:"message,omitempty"`
}
