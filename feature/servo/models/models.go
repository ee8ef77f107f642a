package models

// Command is a position request.
type Command struct {
	Position int `json:"position"` // degrees, 0-180
}

// CommandResponse confirms an applied servo command.
type CommandResponse struct {
	Status   string `json:"status"`
	Position int    `json:"position"` // degrees actually applied
}

// StatusResponse reports the controller's current state.
type StatusResponse struct {
	Status       string `json:"status"`
	Position     int    `json:"position"`      // degrees
	Uptime       int64  `json:"uptime"`        // milliseconds since the controller started
	WifiStrength int    `json:"wifi_strength"` // dBm, 0 when no wireless link
}
