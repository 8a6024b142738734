// Package portcheck classifies listen errors
package portcheck

import "strings"

// IsAddrInUse reports whether err means the port is already bound.
func IsAddrInUse(err error) bool {
	if err == nil {
		return false
	}
	if isAddrInUseErrno(err) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "address already in use")
}
