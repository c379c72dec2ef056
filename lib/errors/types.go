package errors

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return e.Resource + " " + e.ID + " not found"
	}
	return e.Resource + " not found"
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason != "" {
		return "invalid " + e.Argument + ": " + e.Reason
	}
	return "invalid " + e.Argument
}

func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

// FailedPreconditionError reports that a resource is not in a state which
// permits the operation, such as a package with a missing signature.
type FailedPreconditionError struct {
	Resource string
	State    string
	Reason   string
}

func (e *FailedPreconditionError) Error() string {
	if e.Reason != "" {
		return e.Resource + " " + e.State + ": " + e.Reason
	}
	return e.Resource + " " + e.State
}

func NewFailedPreconditionError(resource, state,
	reason string) *FailedPreconditionError {
	return &FailedPreconditionError{
		Resource: resource,
		State:    state,
		Reason:   reason,
	}
}

type UnimplementedError struct {
	Operation string
}

func (e *UnimplementedError) Error() string {
	if e.Operation != "" {
		return e.Operation + " not implemented"
	}
	return "not implemented"
}

func NewUnimplementedError(operation string) *UnimplementedError {
	return &UnimplementedError{Operation: operation}
}
