package utils

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

func IsPortAvailable(host string, port int) bool {
	Verbose("Checking if port %d is available on %s", port, host)
	listener, err := net.ListenTCP("tcp4", &net.TCPAddr{IP: net.ParseIP(host), Port: port})
	if err != nil {
		Verbose("error: %v", err)
		return false
	}

	defer listener.Close()
	return true
}

// CheckListenAddr verifies that a host:port listen address can be bound
// before the server (or its daemon child) tries to.
func CheckListenAddr(addr string) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		// bare port, e.g. "12000"
		if !strings.Contains(addr, ":") {
			host, portStr = "localhost", addr
		} else {
			return fmt.Errorf("invalid listen address %q: %v", addr, err)
		}
	}

	if host == "" {
		host = "localhost"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %v", portStr, err)
	}

	if !IsPortAvailable(host, port) {
		return fmt.Errorf("port %d is not available on %s", port, host)
	}

	return nil
}
