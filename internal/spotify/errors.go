package spotify

// ClientError is the single error kind returned by Client operations. It
// carries a human-readable message and, when the failure came from the
// transport or credential layer, the underlying cause.
type ClientError struct {
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error { return e.Err }
