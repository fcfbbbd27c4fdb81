package types

// MetricsCollector defines methods for recording assignment metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called concurrently and must be thread-safe.
type MetricsCollector interface {
	// RecordAssignment records a successful assignment.
	//
	// Parameters:
	//   - strategy: Strategy name ("greedy", "seat-filling", "round-robin")
	//   - duration: Time taken in seconds
	//   - validators: Size of the validator set
	//   - shards: Number of shards
	RecordAssignment(strategy string, duration float64, validators, shards int)

	// RecordAssignmentError records a failed assignment.
	//
	// Parameters:
	//   - strategy: Strategy name
	//   - reason: Failure class ("invalid_input", "insufficient_validators", "source", "other")
	RecordAssignmentError(strategy, reason string)

	// RecordBalance records the balance report of the latest assignment.
	RecordBalance(strategy string, report BalanceReport)
}
