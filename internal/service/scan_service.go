package service

import (
	"encoding/json"

	"go.uber.org/zap"
)

// ScanService accepts scanned QR payloads. Payloads are opaque and are not
// decoded, validated or stored.
type ScanService interface {
	Receive(code json.RawMessage) json.RawMessage
}

type scanService struct {
	logger *zap.Logger
}

func NewScanService(logger *zap.Logger) ScanService {
	return &scanService{logger: logger.Named("scan")}
}

// Receive logs the payload and hands it back unchanged.
func (s *scanService) Receive(code json.RawMessage) json.RawMessage {
	s.logger.Info("received QR code", zap.ByteString("code", code))
	return code
}
