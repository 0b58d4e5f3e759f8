package model

// OperationResult is the uniform contract returned by every mutating
// operation. Business failures (not found, capacity exceeded, bad
// credentials) are reported through it rather than as errors so that
// callers always receive a structured outcome. On a successful login the
// Message field carries the issued token.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Ok returns a successful result with the given message.
func Ok(msg string) OperationResult { return OperationResult{Success: true, Message: msg} }

// Fail returns a failed result with the given message.
func Fail(msg string) OperationResult { return OperationResult{Success: false, Message: msg} }
