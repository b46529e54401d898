// Package cli provides the interactive command-line front end of the
// academic portal.
//
// It stands in for the browser pages: a REPL that registers and logs users
// in, renders the progress dashboard, accepts weekly reflections and
// updates assignment statuses. A persisted session is restored on startup.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command set.
package cli
