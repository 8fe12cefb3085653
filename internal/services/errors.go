package services

// The Message of each error is returned to the client verbatim.

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }

type ProcessingError struct{ Message string }

func (e *ProcessingError) Error() string { return e.Message }

var (
	ErrPromptRequired   = &ValidationError{Message: "Prompt is required"}
	ErrMessagesRequired = &ValidationError{Message: "Messages are required"}
	ErrInvalidRole      = &ValidationError{Message: "Invalid message role"}
	ErrInvalidBody      = &ValidationError{Message: "Invalid request body"}

	ErrAccessDenied = &ForbiddenError{Message: "You can't access this"}

	ErrProcessing = &ProcessingError{Message: "Error processing the request"}
)
