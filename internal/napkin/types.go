package napkin

// ThoughtRequest is the JSON body for /api/createThought. Field names match
// the wire schema exactly; the struct is built fresh for each submission and
// never persisted.
type ThoughtRequest struct {
	Email     string `json:"email"`
	Token     string `json:"token"`
	Thought   string `json:"thought"`
	SourceURL string `json:"sourceUrl"`
}

// ThoughtResponse mirrors the payload Napkin returns on a successful create.
type ThoughtResponse struct {
	ThoughtID string `json:"thoughtId"`
	URL       string `json:"url"`
}
