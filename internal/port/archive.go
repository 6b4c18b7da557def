package port

import (
	"context"
	"encoding/json"
)

// ReportArchive stores completed report payloads keyed by protocol.
type ReportArchive interface {
	Put(ctx context.Context, protocol string, payload json.RawMessage) error
	Get(ctx context.Context, protocol string) (json.RawMessage, error)
}
