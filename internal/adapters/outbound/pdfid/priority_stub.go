//go:build !unix

package pdfid

// deprioritize is a no-op where the platform has no niceness notion we
// support.
func deprioritize(pid, nice int) {}
