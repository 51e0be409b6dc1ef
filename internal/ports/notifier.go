package ports

import "time"

type NoticeKind string

const (
	NoticeValidation   NoticeKind = "validation"
	NoticeNetwork      NoticeKind = "network"
	NoticeOptimization NoticeKind = "optimization"
	NoticeInfo         NoticeKind = "info"
)

// A user-visible message produced by the orchestrator.
type Notice struct {
	Kind    NoticeKind
	Message string
	At      time.Time
}

// Sink for user-visible notifications. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(n Notice)
}
