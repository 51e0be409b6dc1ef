package notify

import (
	"log"
	"route-comparison-service/internal/ports"
)

// LogNotifier writes every notice to the standard logger.
type LogNotifier struct{}

var _ ports.Notifier = LogNotifier{}

func (LogNotifier) Notify(n ports.Notice) {
	log.Printf("notice kind=%s msg=%q", n.Kind, n.Message)
}

// Multi fans a notice out to every wrapped notifier in order.
type Multi []ports.Notifier

var _ ports.Notifier = Multi(nil)

func (m Multi) Notify(n ports.Notice) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}
