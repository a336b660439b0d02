//go:build nonzerodebug

package nonzero

// Debug builds re-validate the non-zero invariant at every re-wrap site.
const debugChecks = true
