// Package notify is the outbound notification capability: the store
// reports completed actions and failures through it, never by halting.
package notify

// Severity classifies a notification for presentation
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Error   Severity = "error"
)

// Notifier receives user-facing messages after an action completes
type Notifier interface {
	Notify(message string, severity Severity)
}

// Func adapts a function to the Notifier interface
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) { f(message, severity) }

// Discard drops every notification
var Discard = Func(func(string, Severity) {})
