package main

import (
	"net"
	"testing"
	"time"

	"go.uber.org/zap"

	"trackit-be/internal/config"
)

func TestRun_ReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	cfg := &config.Config{
		Addr:   ln.Addr().String(),
		QRCode: config.QRCodeConfig{RotateEvery: time.Minute, ImageSize: 128},
	}

	done := make(chan error, 1)
	go func() { done <- run(cfg, zap.NewNop()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("run returned nil for an address already in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the listener failed")
	}
}
