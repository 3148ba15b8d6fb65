package api

// ClientConfig holds connection settings for the presence API.
type ClientConfig struct {
	BaseURL       string
	TimeoutMs     int
	DialTimeoutMs int
	UserAgent     string
}

// DefaultClientConfig returns settings for a presence analyzer running locally.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:       "http://localhost:5000",
		TimeoutMs:     10000,
		DialTimeoutMs: 5000,
		UserAgent:     "presence-cli",
	}
}
