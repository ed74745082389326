// Package authsync keeps a user's open tabs in step: signing in or out in one tab
// is pushed to every other tab of the same user over a per-user channel.
package authsync

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/olahol/melody"

	"tourbooking/services/logger"
)

// Event is the kind of auth change being broadcast
type Event string

const (
	SignedIn  Event = "SIGNED_IN"
	SignedOut Event = "SIGNED_OUT"
)

func (e Event) Valid() bool {
	return e == SignedIn || e == SignedOut
}

const (
	keyChannel = "channel"
	keyUserID  = "userID"
	keySession = "sessionID"
)

// Message is the payload sent to tabs and subscribers
type Message struct {
	Type   Event     `json:"type"`
	UserID string    `json:"userId"`
	Origin string    `json:"origin,omitempty"`
	At     time.Time `json:"at"`
}

// Channel is the name of userID's channel
func Channel(userID string) string {
	return "auth-sync:" + userID
}

type Hub struct {
	m      *melody.Melody
	dedup  *Deduper
	logger logger.Logger

	mu     sync.RWMutex
	subs   map[string]map[uint64]func(Message)
	nextID uint64
}

// NewHub installs the hub's message handler on m
func NewHub(m *melody.Melody, dedup *Deduper, log logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop{}
	}
	h := &Hub{
		m:      m,
		dedup:  dedup,
		logger: log,
		subs:   make(map[string]map[uint64]func(Message)),
	}
	m.HandleConnect(h.handleConnect)
	m.HandleMessage(h.handleMessage)
	return h
}

// Serve upgrades the request and joins the connection to userID's channel
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	return h.m.HandleRequestWithKeys(w, r, map[string]interface{}{
		keyChannel: Channel(userID),
		keyUserID:  userID,
		keySession: uuid.NewString(),
	})
}

func (h *Hub) handleConnect(s *melody.Session) {
	id, _ := s.Get(keySession)
	// tell the tab its own id so it can ignore its echo
	data, _ := json.Marshal(map[string]interface{}{"type": "HELLO", "sessionId": id})
	s.Write(data)
}

func (h *Hub) handleMessage(s *melody.Session, data []byte) {
	var in struct {
		Type Event `json:"type"`
	}
	if err := json.Unmarshal(data, &in); err != nil || !in.Type.Valid() {
		return
	}
	userID, _ := s.Get(keyUserID)
	origin, _ := s.Get(keySession)
	uid, _ := userID.(string)
	sid, _ := origin.(string)
	if uid == "" {
		return
	}
	if _, err := h.Broadcast(uid, in.Type, sid); err != nil {
		h.logger.Warn("auth sync broadcast for %s: %v", uid, err)
	}
}

// Broadcast sends ev to every connection of userID except origin, and to local subscribers.
// It reports false when the same (user, event) was broadcast within the de-dup window.
func (h *Hub) Broadcast(userID string, ev Event, origin string) (bool, error) {
	if !ev.Valid() {
		return false, fmt.Errorf("unknown auth event %q", ev)
	}
	if h.dedup != nil && !h.dedup.Allow(userID+"|"+string(ev)) {
		return false, nil
	}

	msg := Message{Type: ev, UserID: userID, Origin: origin, At: time.Now().UTC()}
	data, err := json.Marshal(msg)
	if err != nil {
		return false, err
	}

	channel := Channel(userID)
	err = h.m.BroadcastFilter(data, func(s *melody.Session) bool {
		ch, _ := s.Get(keyChannel)
		if ch != channel {
			return false
		}
		sid, _ := s.Get(keySession)
		return origin == "" || sid != origin
	})
	if err != nil && !h.m.IsClosed() {
		return false, err
	}

	h.notify(userID, msg)
	return true, nil
}

// Subscribe calls fn for every event on userID's channel until the returned func is called
func (h *Hub) Subscribe(userID string, fn func(Message)) (unsubscribe func()) {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[uint64]func(Message))
	}
	h.subs[userID][id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], id)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			h.mu.Unlock()
		})
	}
}

func (h *Hub) notify(userID string, msg Message) {
	h.mu.RLock()
	fns := make([]func(Message), 0, len(h.subs[userID]))
	for _, fn := range h.subs[userID] {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(msg)
	}
}

// SweepDedup evicts expired de-dup keys
func (h *Hub) SweepDedup() int {
	if h.dedup == nil {
		return 0
	}
	return h.dedup.Sweep()
}

func (h *Hub) Close() error {
	return h.m.Close()
}
