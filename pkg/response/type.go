package response

const (
	MessageSuccess       = "Success"
	MessageInternalError = "Something went wrong"
	MessageBadRequest    = "Bad request"
	MessageUnauthorized  = "Unauthorized"
	MessageUnavailable   = "Service unavailable"
)

// Resp is the envelope every JSON endpoint answers with. ErrorCode 0 means success.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
