//go:build !unix && !windows

package portcheck

func isAddrInUseErrno(err error) bool {
	return false
}
