package webhook

// Summary event types pushed by upstream summarizers.
const (
	EventCallSummaryReady  = "call.summary_ready"
	EventSpaceSummaryReady = "space.summary_ready"
)

// SecurityConfig controls webhook request validation.
type SecurityConfig struct {
	Secret          string   // HMAC secret; empty disables signature checks
	AllowedIPs      []string // exact IPs or CIDR ranges; empty allows all
	RateLimitPerMin int
}

// summaryPayload is the wire shape of a summary-ready notification.
type summaryPayload struct {
	EventType string `json:"event_type"`
	CallID    string `json:"call_id"`
	SessionID string `json:"session_id"`
	Summary   struct {
		NextStep string `json:"next_step"`
		Outcome  string `json:"outcome"`
	} `json:"summary"`
}
