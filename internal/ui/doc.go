// Package ui provides the Bubble Tea terminal interface for napt.
//
// # Architecture Overview
//
// The root Model is a small three-view state machine:
//
//   - Compose View: thought and source-URL inputs plus a status line that
//     renders the submission RequestState
//   - Settings View: email and token inputs backed by the credential store
//   - History View: viewport over recent successful sends
//
// # Event Flow
//
//  1. Run() starts the tea.Program in the alt screen
//  2. Key events drive the focused textinput or switch views
//  3. Enter in the compose view flips the state to Loading and launches a
//     tea.Cmd that calls the Submitter off the update loop
//  4. The command's result returns as a submitDoneMsg carrying the final
//     RequestState; the Update loop is the only writer of that value
//  5. Context cancellation (SIGINT/SIGTERM) shuts the program down and
//     abandons any in-flight call
//
// # Submission Semantics
//
// The enter key is ignored while the state is Loading, so at most one
// createThought call is ever in flight. On Success the inputs are cleared
// and the returned thought URL is shown; on Error the inputs keep their
// contents so the user can fix and resend without retyping.
//
// # Key Bindings
//
// Compose: enter send, tab switch field, ctrl+e settings, ctrl+r history,
// esc or ctrl+c quit. Settings: enter save, ctrl+x clear, esc back.
// History: arrows scroll, esc back.
package ui
