package webhook

import "fmt"

// AuthenticationError rejects a delivery whose signature did not verify.
// Nothing else runs once this is returned.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authenticationFailure: %s", e.Message)
}

func NewAuthenticationError(msg string) error {
	return &AuthenticationError{Message: msg}
}

// PipelineError wraps a failure from the normalize, provision or notify
// stages. The stage is kept for logs only; HTTP responses stay generic.
type PipelineError struct {
	Stage   string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func newPipelineError(stage, msg string, err error) error {
	return &PipelineError{Stage: stage, Message: msg, Err: err}
}
