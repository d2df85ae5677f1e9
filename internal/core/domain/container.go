package domain

// Container represents a running (or exited) instance of a packaged app.
type Container struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Status    string `json:"status"`
	State     string `json:"state"` // running, exited, etc.
	IPAddress string `json:"ip_address,omitempty"`
	Port      int    `json:"port,omitempty"` // container-side app port
}
