// Package submit implements the one behavioral contract that matters in this
// application: turning a thought and an optional source URL into exactly one
// createThought call and a RequestState the UI can render.
//
// # State Machine
//
// RequestState is a four-variant tagged union:
//
//	Idle ──submit──> Loading ──┬──> Success(ThoughtResponse)
//	  ^                        └──> Error(message)
//	  └────── user edits / retries ─────┘
//
// Exactly one variant is active at a time. Error messages are fixed,
// user-safe strings; no raw error or credential content ever reaches the
// screen.
//
// # Submission Flow
//
//  1. Trim the thought; empty input fails validation with no network call.
//  2. Load credentials; an unconfigured pair fails validation with no
//     network call.
//  3. Issue the single POST and map the outcome:
//     2xx → Success, 401/403 → invalid credentials, 5xx → server error,
//     other statuses → generic failure, timeouts → timed out, DNS and
//     unreachable-network errors → no connection, anything else → generic
//     network error.
//
// No retries, no deduplication, no offline queueing. The UI disables the
// send key while Loading, which is the only single-flight mechanism needed:
// the Bubble Tea update loop is the sole writer of the state value.
//
// # History
//
// Successful sends are recorded through the optional Recorder. Recording is
// best-effort: a history failure is logged and the send still reports
// Success.
//
// # Logging
//
// Each submission carries a generated submission_id so log lines correlate.
// Credential fields are never logged.
package submit
