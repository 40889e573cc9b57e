package response

// Resp is the JSON body written for every error response.
type Resp struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

const (
	DefaultErrorMessage = "Internal server error"
)
