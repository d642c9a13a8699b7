// Package utils provides common utility functions for the data-integrity
// toolkit. It includes the lossy ToString convenience conversion and
// the strict Int/Float coercions used by the type-convertibility
// heuristics, where a failed coercion is itself the signal.
package utils
