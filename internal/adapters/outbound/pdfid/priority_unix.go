//go:build unix

package pdfid

import "syscall"

// deprioritize lowers the child's scheduling priority. Errors are dropped:
// the hint is an optimization, never load-bearing.
func deprioritize(pid, nice int) {
	_ = syscall.Setpriority(syscall.PRIO_PROCESS, pid, nice)
}
