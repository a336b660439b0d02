//go:build !nonzerodebug

package nonzero

// Release builds trust the re-wrap proof in wrap and skip re-validation.
const debugChecks = false
