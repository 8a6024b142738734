//go:build unix

package portcheck

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isAddrInUseErrno(err error) bool {
	return errors.Is(err, unix.EADDRINUSE)
}
