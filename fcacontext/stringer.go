package fcacontext

import "fmt"

// fmtSprint is the default string-conversion hook used when a Context is
// constructed with a nil xString or yString.
func fmtSprint[T any](v T) string { return fmt.Sprint(v) }
