package appstore

// Environment classifies which of Apple's systems produced a transaction.
type Environment string

const (
	// EnvironmentProduction is the live App Store.
	EnvironmentProduction Environment = "Production"
	// EnvironmentSandbox is Apple's testing system.
	EnvironmentSandbox Environment = "Sandbox"
)

// environmentFromRaw maps a raw environment value onto an Environment.
// Only the exact string "Production" classifies as production; every other
// value, absent and malformed ones included, counts as sandbox traffic so an
// unknown environment can never be mistaken for a live purchase.
func environmentFromRaw(value interface{}) Environment {
	if s, ok := value.(string); ok && s == string(EnvironmentProduction) {
		return EnvironmentProduction
	}

	return EnvironmentSandbox
}
