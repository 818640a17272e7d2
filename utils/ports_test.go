package utils

import (
	"net"
	"strconv"
	"strings"
	"testing"
)

func grabPort(t *testing.T) (net.Listener, int) {
	t.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	_, portStr, _ := net.SplitHostPort(listener.Addr().String())
	port, _ := strconv.Atoi(portStr)
	return listener, port
}

func TestIsPortAvailable(t *testing.T) {
	listener, port := grabPort(t)
	defer listener.Close()

	if IsPortAvailable("127.0.0.1", port) {
		t.Errorf("expected port %d to be reported busy", port)
	}

	listener.Close()
	if !IsPortAvailable("127.0.0.1", port) {
		t.Errorf("expected port %d to be reported free after close", port)
	}
}

func TestCheckListenAddr(t *testing.T) {
	listener, busyPort := grabPort(t)
	defer listener.Close()

	tests := []struct {
		addr    string
		wantErr string
	}{
		{"127.0.0.1:0", ""},
		{"0", ""},
		{":0", ""},
		{"127.0.0.1:" + strconv.Itoa(busyPort), "not available"},
		{"127.0.0.1:notaport", "invalid port"},
		{"[::1]:x:y", "invalid"},
	}

	for _, tt := range tests {
		err := CheckListenAddr(tt.addr)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("CheckListenAddr(%q): %v", tt.addr, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("CheckListenAddr(%q) = %v, want error containing %q", tt.addr, err, tt.wantErr)
		}
	}
}
