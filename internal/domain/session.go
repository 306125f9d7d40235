package domain

// Permission nodes granted to web-panel operators by the plugin.
const (
	PermAnnouncement = "ac.web.announcement"
	PermCompensation = "ac.web.compensation"
	PermWhitelist    = "ac.web.whitelist"
	PermLog          = "ac.web.log"
	PermAll          = "ac.web.*"
)

type Session struct {
	Token       string   `json:"-"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// Valid reports whether both the token and the operator name are present.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.Username != ""
}

func (s *Session) HasPermission(node string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Permissions {
		if p == PermAll || p == node {
			return true
		}
	}
	return false
}
