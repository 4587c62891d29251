package signal

// Type identifies a lifecycle signal, e.g. LOAD_CHECKOUT_REQUESTED
type Type string

// Signal is a discrete notification describing one step of a workflow
type Signal struct {
	Type    Type `json:"type"`
	Payload any  `json:"payload,omitempty"`
	Meta    any  `json:"meta,omitempty"`
	Error   bool `json:"error,omitempty"`
}

// New creates a signal carrying an optional payload
func New(t Type, payload any) Signal {
	return Signal{Type: t, Payload: payload}
}

// NewWithMeta creates a signal carrying a payload and meta data
func NewWithMeta(t Type, payload, meta any) Signal {
	return Signal{Type: t, Payload: payload, Meta: meta}
}

// NewError creates a failure signal carrying err as its payload
func NewError(t Type, err error) Signal {
	return Signal{Type: t, Payload: err, Error: true}
}

// Err returns the error carried by a failure signal, or nil
func (s Signal) Err() error {
	if !s.Error {
		return nil
	}
	err, _ := s.Payload.(error)
	return err
}

func (t Type) String() string {
	return string(t)
}
