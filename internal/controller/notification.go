package controller

// Severity classifies a transient notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient, auto-dismissing message raised by a
// controller after an operation completes.
type Notification struct {
	Message  string
	Severity Severity
}
