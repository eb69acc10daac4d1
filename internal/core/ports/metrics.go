package ports

// Metrics receives business counters. Implementations must be safe for
// concurrent use.
type Metrics interface {
	// EligibilityChecked counts one eligibility decision by reason code.
	EligibilityChecked(code string, eligible bool)

	// DeliveryTransitioned counts one workflow step into status.
	DeliveryTransitioned(status string)

	// JobFinished records one scheduled job run.
	JobFinished(job string, processed int, err error)
}
