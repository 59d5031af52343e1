// Package cli provides the interactive GreenPath command-line client.
//
// It wires configuration, the local SQLite store, the session, the advisor
// and the application services, then runs a REPL until the user exits.
//
// Key features:
//   - Sign up / Login / Logout
//   - Location setup with a cascading country, state and city picker
//   - Heat-risk dashboard, zone analysis and recommendations
//   - AI sustainability report and tailored advice
//   - Feedback
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled. See App and runREPL for details.
package cli
