//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package mesh

import "syscall"

func reusePort(_, _ string, _ syscall.RawConn) error {
	return nil
}
