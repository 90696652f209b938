package formats

import "slogforge/models"

// DefaultPriority is used when a generation request carries neither a
// priority nor a facility/severity pair: facility 4 (auth), severity 2
// (critical).
const DefaultPriority = 34

// EncodePriority combines a facility (0-23) and severity (0-7) into a
// syslog priority. Inputs are not range-checked; callers validate if
// they need to.
func EncodePriority(facility, severity int) int {
	return facility<<3 | severity
}

// DecodePriority splits a syslog priority into its facility and
// severity. Exact inverse of EncodePriority for in-range inputs.
func DecodePriority(priority int) (facility, severity int) {
	return priority >> 3, priority & 7
}

// resolvePriority applies the generation defaults: explicit priority
// wins, then an encoded facility/severity pair, then DefaultPriority.
func resolvePriority(c models.MessageComponents) int {
	if c.Priority != nil {
		return *c.Priority
	}

	if c.Facility != nil && c.Severity != nil {
		return EncodePriority(*c.Facility, *c.Severity)
	}

	return DefaultPriority
}
