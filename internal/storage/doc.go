// Package storage defines the key-value port the portal persists through,
// the layout of its key space, and helpers for JSON values and multi-key
// writes.
//
// Key space
//
//	users                           JSON array of accounts
//	currentSession                  JSON account of the active session
//	userData_{accountID}            JSON user record
//	verification-{accountID}-week{N} raw reflection text, N in 1..3
//
// Implementations live in the memory and sqlite subpackages.
package storage
