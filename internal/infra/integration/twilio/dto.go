package twilio

type InitiateCallInput struct {
	To     string
	From   string
	Record bool
}

// CallDetail mirrors what the provider reports for a single call attempt.
type CallDetail struct {
	Sid       string
	From      string
	To        string
	Duration  int
	Status    string
	StartedAt string
}

// --- provider payloads ---

type callResponse struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
}

// Twilio serializes duration as a string ("42"), not a number.
type callDetailResponse struct {
	Sid         string `json:"sid"`
	From        string `json:"from"`
	To          string `json:"to"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created"`
}

type recordingsResponse struct {
	Recordings []struct {
		URI string `json:"uri"`
	} `json:"recordings"`
}
