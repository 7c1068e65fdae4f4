package handler

import (
	"context"

	clickprocessor "refspring/internal/clicks/processor"
	"refspring/internal/store"
)

// ClickRecorder records attributed clicks
type ClickRecorder interface {
	RecordClick(ctx context.Context, req clickprocessor.RecordClickRequest) (clickprocessor.RecordClickResult, error)
}

// LinkResolver maps short codes to links
type LinkResolver interface {
	Resolve(ctx context.Context, code string) (store.ShortLink, error)
}
