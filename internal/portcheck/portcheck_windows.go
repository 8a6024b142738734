//go:build windows

package portcheck

import (
	"errors"

	"golang.org/x/sys/windows"
)

func isAddrInUseErrno(err error) bool {
	return errors.Is(err, windows.WSAEADDRINUSE)
}
