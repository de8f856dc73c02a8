package booking

// Raw is an untrusted booking payload as decoded from a JSON body.
type Raw map[string]any

// Request is a booking submission that passed schema validation.
type Request struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"partySize"`
	Occasion  string `json:"occasion,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
