package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easyqist/storefront/internal/domain"
)

// Notifier is the single user-visible reporting surface: every core operation,
// successful or failed, surfaces exactly one transient notification through
// it. Entries expire after a fixed TTL and are pruned on read rather than by a
// background timer; observers can also subscribe for push delivery.
type Notifier struct {
	mu          sync.Mutex
	ttl         time.Duration
	entries     []domain.Notification
	subscribers []chan domain.Notification
	now         func() time.Time
}

func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{
		ttl: ttl,
		now: time.Now,
	}
}

// Publish records a notification and fans it out to subscribers. Slow
// subscribers are skipped rather than blocked on.
func (n *Notifier) Publish(userID, message, kind string) domain.Notification {
	notification := domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Type:      kind,
		Timestamp: n.now(),
	}

	n.mu.Lock()
	n.pruneLocked()
	n.entries = append(n.entries, notification)
	subs := append([]chan domain.Notification(nil), n.subscribers...)
	n.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- notification:
		default:
		}
	}

	return notification
}

// Active returns the not-yet-expired notifications for a user.
func (n *Notifier) Active(userID string) []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pruneLocked()
	out := make([]domain.Notification, 0)
	for _, e := range n.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops all notifications for a user.
func (n *Notifier) Clear(userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	kept := n.entries[:0]
	for _, e := range n.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	n.entries = kept
}

// Subscribe registers an observer channel. The returned cancel func must be
// called to release it.
func (n *Notifier) Subscribe() (<-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, 16)

	n.mu.Lock()
	n.subscribers = append(n.subscribers, ch)
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		for i, sub := range n.subscribers {
			if sub == ch {
				n.subscribers = append(n.subscribers[:i], n.subscribers[i+1:]...)
				break
			}
		}
		n.mu.Unlock()
	}
	return ch, cancel
}

func (n *Notifier) pruneLocked() {
	if n.ttl <= 0 {
		return
	}
	cutoff := n.now().Add(-n.ttl)
	kept := n.entries[:0]
	for _, e := range n.entries {
		if e.Timestamp.After(cutoff) {
			kept = append(kept, e)
		}
	}
	n.entries = kept
}
