package notification

import "context"

// Result reports the outcome of a delivery attempt.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Sender delivers a summary to an external channel. Send never returns an
// error: every failure is reported through Result.
type Sender interface {
	Send(ctx context.Context, summary string) Result
}

// Header is prepended to every outgoing summary.
const Header = "*Todo Summary*"

func format(summary string) string {
	return Header + "\n\n" + summary
}

func failed(err error) Result {
	return Result{Success: false, Message: err.Error()}
}
