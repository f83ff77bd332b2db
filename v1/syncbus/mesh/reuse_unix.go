//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package mesh

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// reusePort lets several nodes on one host bind the multicast port.
func reusePort(_, _ string, c syscall.RawConn) error {
	var serr error
	err := c.Control(func(fd uintptr) {
		if serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); serr != nil {
			return
		}
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
	if err != nil {
		return err
	}
	return serr
}
