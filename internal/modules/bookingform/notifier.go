package bookingform

import "log"

// LogNotifier writes notifications through a logger. A nil Logger uses the
// standard logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Success(message string) {
	n.printf("notify level=success message=%q", message)
}

func (n LogNotifier) Error(message string) {
	n.printf("notify level=error message=%q", message)
}

func (n LogNotifier) printf(format string, args ...any) {
	if n.Logger != nil {
		n.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
