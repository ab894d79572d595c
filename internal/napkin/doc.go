// Package napkin provides an HTTP client for the Napkin note service API.
//
// # Overview
//
// This package defines the API client for submitting thoughts to Napkin
// (app.napkin.one). It handles HTTP communication, JSON serialization, and
// typed representation of the createThought request and response.
//
// # Client Usage
//
// Create a client using the base URL from configuration:
//
//	client, err := napkin.NewClient("", napkin.DefaultTimeout)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	resp, err := client.CreateThought(ctx, napkin.ThoughtRequest{
//		Email:   "user@example.com",
//		Token:   "secret",
//		Thought: "Buy milk",
//	})
//
// # Wire Protocol
//
// The client speaks the one endpoint Napkin exposes for thought capture:
//
//   - POST /api/createThought
//   - Headers: Content-Type: application/json, Accept: application/json
//   - Body: {"email", "token", "thought", "sourceUrl"} (all strings)
//   - Success body: {"thoughtId", "url"}
//
// # Error Handling
//
// The client distinguishes between several error types:
//
//   - Client initialization errors: invalid base URL
//   - Network errors: connection refused, timeout, DNS failure (wrapped
//     "execute request" errors; inspect with errors.As)
//   - HTTP errors: non-2xx status codes, reported as *StatusError
//   - Deserialization errors: malformed JSON in a 2xx response
//
// Non-success response bodies are drained and discarded: Napkin does not
// document an error body schema, so classification relies on status codes
// only. Callers that need to branch on the status (401 vs 500) unwrap the
// *StatusError.
//
// # Request Handling
//
// All requests use context for cancellation, carry a fixed User-Agent, and
// are bounded by the http.Client timeout (default 30 seconds). A timeout
// surfaces as a transport error whose net.Error reports Timeout() == true.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use, though the application only
// ever has one createThought call in flight at a time.
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No retries (the user resubmits manually)
//   - No batching or pipelining (one thought per call)
//   - No credential storage (callers supply email and token per request)
package napkin
