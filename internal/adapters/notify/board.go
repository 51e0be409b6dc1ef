package notify

import (
	"route-comparison-service/internal/ports"
	"sync"
	"time"
)

const DefaultBoardSize = 20

// Board keeps the most recent notices so they can be shown on the dashboard.
type Board struct {
	mu      sync.Mutex
	size    int
	notices []ports.Notice
	now     func() time.Time
}

var _ ports.Notifier = (*Board)(nil)

func NewBoard(size int) *Board {
	if size < 1 {
		size = DefaultBoardSize
	}
	return &Board{size: size, now: time.Now}
}

func (b *Board) Notify(n ports.Notice) {
	if n.At.IsZero() {
		n.At = b.now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.notices = append(b.notices, n)
	if over := len(b.notices) - b.size; over > 0 {
		b.notices = append(b.notices[:0:0], b.notices[over:]...)
	}
}

// Recent returns the retained notices, newest first.
func (b *Board) Recent() []ports.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]ports.Notice, 0, len(b.notices))
	for i := len(b.notices) - 1; i >= 0; i-- {
		out = append(out, b.notices[i])
	}
	return out
}

// Clear drops every retained notice.
func (b *Board) Clear() {
	b.mu.Lock()
	b.notices = nil
	b.mu.Unlock()
}
