package launcher

import "syscall"

// sysProcAttr makes the kernel kill the server if the launcher dies without
// getting the chance to forward a signal. The signal is tied to the forking
// OS thread rather than the process; Supervise keeps that thread locked.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Pdeathsig: syscall.SIGKILL}
}
