package handler

import (
	"context"

	"refspring/internal/fraud/processor"
)

// Blacklist manages banned identity hashes
type Blacklist interface {
	HashIdentity(rawIP string) string
	AddToBlacklist(ctx context.Context, ipHash, reason, severity, source string) error
	IsHashBlacklisted(ctx context.Context, ipHash string) (processor.BlacklistResult, error)
}
