// Package app provides the orchestration layer for napt.
//
// # Overview
//
// This package wires together configuration, logging, the credential store,
// the Napkin API client, the send history, and the UI. It is the composition
// root: all dependencies are initialized and connected here, and nothing
// else in the repository touches more than its neighbors.
//
// # Initialization Order
//
//  1. Load config (and the config dir's .env overlay)
//  2. Open the logger (JSON file under the data dir by default)
//  3. Build the Napkin HTTP client from base URL and timeout
//  4. Assemble the credential chain: environment first, encrypted file second
//  5. Open the history database (failure degrades to no history, not a crash)
//  6. Build the Submitter and start the TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run): config parse failures, logger or client
// initialization failures. Recoverable: a broken history database is logged
// and the app runs without the history view; submission failures are handled
// entirely inside the submit package and surface only as UI state.
//
// There are no background goroutines here: submissions are user-driven
// one-shots launched by the UI, so unlike a monitoring dashboard there is
// nothing to poll.
package app
