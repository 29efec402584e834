package dto

// AddPropertyRequest is the registration payload; the id is caller-supplied.
type AddPropertyRequest struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// PropertyResponse carries a property on the wire. Timestamps are integer
// nanoseconds since epoch.
type PropertyResponse struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Owner     string `json:"owner"`
	CreatedAt int64  `json:"created_at"`
}
