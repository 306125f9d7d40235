package console

// WhitelistSwitch is the optimistic enable/disable toggle. Begin flips the
// displayed value before the request is sent; Rollback restores it when the
// backend refuses or cannot be reached.
type WhitelistSwitch struct {
	enabled  bool
	pending  bool
	previous bool
}

func (s *WhitelistSwitch) Enabled() bool { return s.enabled }
func (s *WhitelistSwitch) Pending() bool { return s.pending }

// Set records the value reported by the backend.
func (s *WhitelistSwitch) Set(enabled bool) {
	s.enabled = enabled
	s.pending = false
}

// Begin flips the switch and returns the value to send. A toggle already in
// flight is refused.
func (s *WhitelistSwitch) Begin() (bool, bool) {
	if s.pending {
		return s.enabled, false
	}
	s.previous = s.enabled
	s.enabled = !s.enabled
	s.pending = true
	return s.enabled, true
}

func (s *WhitelistSwitch) Commit() {
	s.pending = false
}

func (s *WhitelistSwitch) Rollback() {
	if s.pending {
		s.enabled = s.previous
	}
	s.pending = false
}
