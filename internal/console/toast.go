package console

import "time"

// ToastDuration is how long a notice stays up. Every new notice restarts it.
const ToastDuration = 3 * time.Second

type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

type Notice struct {
	Message  string
	Severity Severity
}

func Success(msg string) *Notice { return &Notice{Message: msg, Severity: SeveritySuccess} }
func Failure(msg string) *Notice { return &Notice{Message: msg, Severity: SeverityError} }
func Warning(msg string) *Notice { return &Notice{Message: msg, Severity: SeverityWarning} }
func Info(msg string) *Notice    { return &Notice{Message: msg, Severity: SeverityInfo} }

// Toaster holds at most one notice. Each Show bumps a generation so that a
// timer started for an older notice cannot hide a newer one.
type Toaster struct {
	current *Notice
	seq     uint64
}

func (t *Toaster) Show(n Notice) uint64 {
	t.seq++
	t.current = &n
	return t.seq
}

// Dismiss hides the notice only if seq still names the latest one.
func (t *Toaster) Dismiss(seq uint64) bool {
	if seq != t.seq || t.current == nil {
		return false
	}
	t.current = nil
	return true
}

func (t *Toaster) Current() (Notice, bool) {
	if t.current == nil {
		return Notice{}, false
	}
	return *t.current, true
}
