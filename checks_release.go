//go:build !debug

package docmeta

// debugChecks gates contract assertions that are too expensive (or too
// collaborator-dependent) for release builds. Enable with -tags debug.
const debugChecks = false
