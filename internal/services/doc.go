// Package services implements the portal's persistence and progress layer
// on top of a storage.Store:
//
//   - AccountService  registers and authenticates accounts (users key)
//   - SessionService  holds the single active session (currentSession key)
//   - RecordService   loads and saves per-account records (userData_* and
//     verification-* keys)
//   - ProgressService derives dashboard metrics
//   - TrackerService  submits reflections and updates assignment status
//
// Services do not keep ambient state about the logged-in user: the caller
// threads the account ID and the in-memory UserRecord through every call.
package services
