package remote

import (
	"sync"
	"time"
)

// Notifica is a transient user-facing notice about a failed remote operation.
type Notifica struct {
	Messaggio string    `json:"messaggio"`
	Quando    time.Time `json:"quando"`
}

// Notifiche buffers transient notices until the presentation layer drains
// them. Draining is the auto-dismiss: read once, then gone.
type Notifiche struct {
	mu    sync.Mutex
	items []Notifica
}

func (n *Notifiche) Add(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, Notifica{Messaggio: msg, Quando: time.Now()})
}

func (n *Notifiche) Drain() []Notifica {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.items
	n.items = nil
	return out
}
