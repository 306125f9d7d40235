package sdk

type Announcement struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
	Priority   int    `json:"priority"`
	SendTime   string `json:"sendTime"`
	CreateTime string `json:"createTime"`
	Sent       bool   `json:"sent"`
}

type Item struct {
	Material   string   `json:"material" yaml:"material"`
	Amount     int      `json:"amount" yaml:"amount"`
	CustomName string   `json:"customName,omitempty" yaml:"customName,omitempty"`
	Lore       []string `json:"lore" yaml:"lore,omitempty"`
}

type Compensation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreateTime  string `json:"createTime"`
	Items       []Item `json:"items"`
}

type WhitelistEntry struct {
	UUID       string `json:"uuid"`
	PlayerName string `json:"playerName"`
	AddTime    string `json:"addTime"`
}

type Whitelist struct {
	Enabled bool
	Entries []WhitelistEntry
}

type ClaimLog struct {
	ID             string `json:"id"`
	PlayerName     string `json:"playerName"`
	PlayerUUID     string `json:"playerUUID"`
	CompensationID string `json:"compensationId"`
	ClaimTime      string `json:"claimTime"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token       string   `json:"token"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// SaveAnnouncementRequest creates an announcement when ID is empty and
// updates the matching one otherwise.
type SaveAnnouncementRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	SendTime string `json:"sendTime"`
	Priority int    `json:"priority"`
}

type SaveCompensationRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

type whitelistAction struct {
	Action  string `json:"action"`
	Enabled *bool  `json:"enabled,omitempty"`
	UUID    string `json:"uuid,omitempty"`
	Name    string `json:"name,omitempty"`
}
