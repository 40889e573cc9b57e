package huggingface

import "time"

const (
	// DefaultModel is the default text-generation model
	DefaultModel = "tiiuae/falcon-7b-instruct"

	// DefaultBaseURL is the default Inference API endpoint
	DefaultBaseURL = "https://api-inference.huggingface.co"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
