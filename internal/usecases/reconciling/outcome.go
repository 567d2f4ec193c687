package reconciling

// SyncOutcome reports what happened to the best-effort monthly sync that
// follows a client mutation. The primary mutation's success never depends on
// it, but callers and tests can observe it.
type SyncOutcome string

const (
	// OutcomeSynced means the monthly entry was recomputed and persisted.
	OutcomeSynced SyncOutcome = "synced"
	// OutcomeSkipped means the sync refused to run, e.g. the authenticated
	// user does not own the triggering event.
	OutcomeSkipped SyncOutcome = "skipped"
	// OutcomeFailed means a lookup or write failed; the error was logged
	// and swallowed.
	OutcomeFailed SyncOutcome = "failed"
)
