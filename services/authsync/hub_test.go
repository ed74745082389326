package authsync

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/olahol/melody"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(melody.New(), NewDeduper(2*time.Second, 0), nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, r.URL.Query().Get("user"))
	}))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

type helloFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

func dial(t *testing.T, srv *httptest.Server, user string) (*websocket.Conn, string) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + user
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	var hello helloFrame
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&hello); err != nil || hello.Type != "HELLO" {
		t.Fatalf("hello = %+v, err %v", hello, err)
	}
	return conn, hello.SessionID
}

func readMessage(conn *websocket.Conn, timeout time.Duration) (*Message, error) {
	conn.SetReadDeadline(time.Now().Add(timeout))
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func TestBroadcastReachesOtherTabsOnly(t *testing.T) {
	_, srv := newTestHub(t)

	tabA, _ := dial(t, srv, "u1")
	tabB, _ := dial(t, srv, "u1")
	other, _ := dial(t, srv, "u2")

	if err := tabA.WriteJSON(map[string]string{"type": "SIGNED_OUT"}); err != nil {
		t.Fatal(err)
	}

	msg, err := readMessage(tabB, 2*time.Second)
	if err != nil {
		t.Fatalf("tab B read: %v", err)
	}
	if msg.Type != SignedOut || msg.UserID != "u1" {
		t.Fatalf("msg = %+v", msg)
	}

	if _, err := readMessage(tabA, 200*time.Millisecond); err == nil {
		t.Fatal("origin tab should not receive its own event")
	}
	if _, err := readMessage(other, 200*time.Millisecond); err == nil {
		t.Fatal("another user's tab should not receive the event")
	}
}

func TestBroadcastDedup(t *testing.T) {
	hub, _ := newTestHub(t)

	var got []Message
	unsubscribe := hub.Subscribe("u1", func(m Message) { got = append(got, m) })

	ok, err := hub.Broadcast("u1", SignedIn, "")
	if err != nil || !ok {
		t.Fatalf("first broadcast = %v, %v", ok, err)
	}
	ok, err = hub.Broadcast("u1", SignedIn, "")
	if err != nil || ok {
		t.Fatalf("duplicate broadcast = %v, %v", ok, err)
	}
	if _, err := hub.Broadcast("u1", SignedOut, ""); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("subscriber got %d events, want 2", len(got))
	}

	unsubscribe()
	unsubscribe()
	hub.dedup = nil
	hub.Broadcast("u1", SignedOut, "")
	if len(got) != 2 {
		t.Fatal("unsubscribed callback still called")
	}
}

func TestBroadcastUnknownEvent(t *testing.T) {
	hub, _ := newTestHub(t)
	if _, err := hub.Broadcast("u1", Event("TOKEN_REFRESHED"), ""); err == nil {
		t.Fatal("expected error for unknown event")
	}
}

func TestChannel(t *testing.T) {
	if got := Channel("abc"); got != "auth-sync:abc" {
		t.Fatalf("Channel = %q", got)
	}
}
