package server

import (
	"fmt"
)

// BindError reports a failure to bind the listening socket
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind port %d: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// InUse reports whether another socket already holds the port
func (e *BindError) InUse() bool {
	return IsAddrInUse(e.Err)
}

// IsAddrInUse reports whether err is the platform's "address already in use"
// error.
func IsAddrInUse(err error) bool {
	if err == nil {
		return false
	}
	return isAddrInUse(err)
}
