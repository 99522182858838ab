package model

// MachineStatus is the availability of the exchange machine as seen by the client.
type MachineStatus int

// Machine states.
const (
	StatusUnknown MachineStatus = iota
	StatusOperational
	StatusOutOfService
)

// String returns a human-readable name for the status.
func (s MachineStatus) String() string {
	switch s {
	case StatusOperational:
		return "operational"
	case StatusOutOfService:
		return "out of service"
	default:
		return "unknown"
	}
}

// OperationalMessage is the status text the backend reports when the machine can make change.
const OperationalMessage = "Machine operational"

// StatusReport is the body of the admin status endpoint together with its HTTP status code.
type StatusReport struct {
	Message    string `json:"status"`
	HTTPStatus int    `json:"-"`
}

// Operational reports whether the backend described the machine as operational.
func (r StatusReport) Operational() bool {
	return r.Message == OperationalMessage
}
