package entity

// ShellStatus is the coarse global status of the shell.
type ShellStatus int

const (
	StatusReady   ShellStatus = iota // Idle, everything settled
	StatusLoading                    // A content load or workspace switch is in flight
	StatusError                      // A recoverable failure occurred
)

// String returns the status name for logging.
func (s ShellStatus) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ShellState is the global state variant surfaced to the front end. All
// failures caught at operation boundaries convert into the error variant
// carrying a human-readable message; nothing in the core is process-fatal.
type ShellState struct {
	Status  ShellStatus
	Message string // Populated for StatusError
}

// Ready returns the idle state.
func Ready() ShellState {
	return ShellState{Status: StatusReady}
}

// Loading returns the in-flight state.
func Loading() ShellState {
	return ShellState{Status: StatusLoading}
}

// Errorf returns an error state with the given message.
func Errorf(message string) ShellState {
	return ShellState{Status: StatusError, Message: message}
}
