// Package server exposes the game over websockets. Each connection hosts
// one independent session: the connected guest is the only human at that
// front end, with computer opponents filling out the roster. Sessions are
// keyed by guest token so a dropped connection can resume its game.
package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/example/starlanes/internal/auth"
	"github.com/example/starlanes/internal/session"
	"github.com/example/starlanes/internal/store"
)

// Message is an inbound client frame.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSOut is an outbound server frame.
type WSOut struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// GameServer owns the HTTP surface and the live sessions.
type GameServer struct {
	issuer   *auth.TokenIssuer
	sessions store.SessionStore
	upgrader websocket.Upgrader

	activeMu sync.Mutex
	active   map[string]bool // session keys with a live connection
}

// NewGameServer builds the server around a token issuer and a session
// store.
func NewGameServer(issuer *auth.TokenIssuer, sessions store.SessionStore) *GameServer {
	return &GameServer{
		issuer:   issuer,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		active: make(map[string]bool),
	}
}

// Routes registers the HTTP handlers.
func (gs *GameServer) Routes(r *mux.Router) {
	r.HandleFunc("/api/guest", gs.HandleGuest).Methods(http.MethodPost)
	r.Handle("/api/session", gs.issuer.Middleware(http.HandlerFunc(gs.HandleSessionInfo))).Methods(http.MethodGet)
	r.HandleFunc("/ws", gs.HandleWS)
}

// HandleGuest issues a guest token bound to a fresh session key. Clients
// reuse the token across reconnects to resume their session.
func (gs *GameServer) HandleGuest(w http.ResponseWriter, r *http.Request) {
	var data struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	name := data.Name
	if name == "" {
		name = "GUEST"
	}
	token, err := gs.issuer.Issue(randID(), name)
	if err != nil {
		log.Println("issue guest token:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// HandleSessionInfo reports whether the guest has a saved session and
// whether it holds a game in progress, so clients can label their resume
// button before connecting.
func (gs *GameServer) HandleSessionInfo(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	info := struct {
		Name            string `json:"name"`
		HasSavedSession bool   `json:"hasSavedSession"`
		InGame          bool   `json:"inGame"`
	}{Name: claims.Name}

	data, err := gs.sessions.Load(r.Context(), claims.Subject)
	if err == nil {
		if persisted, err := session.DecodePersistedSession(data); err == nil {
			info.HasSavedSession = true
			info.InGame = persisted.Game != nil
		}
	} else if err != store.ErrNoSession {
		log.Println("load session:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

// HandleWS upgrades the connection and runs a session on it until the game
// is over or the client goes away.
func (gs *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	claims, err := gs.issuer.FromRequest(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !gs.claimSession(claims.Subject) {
		http.Error(w, "session already connected", http.StatusConflict)
		return
	}

	conn, err := gs.upgrader.Upgrade(w, r, nil)
	if err != nil {
		gs.releaseSession(claims.Subject)
		log.Println("upgrade:", err)
		return
	}
	go gs.runSession(conn, claims)
}

func (gs *GameServer) claimSession(key string) bool {
	gs.activeMu.Lock()
	defer gs.activeMu.Unlock()
	if gs.active[key] {
		return false
	}
	gs.active[key] = true
	return true
}

func (gs *GameServer) releaseSession(key string) {
	gs.activeMu.Lock()
	delete(gs.active, key)
	gs.activeMu.Unlock()
}

// runSession drives one orchestrator against one connection. The read loop
// feeds client answers to the front end; the orchestrator runs here until
// the session finishes or the front end detects the disconnect.
func (gs *GameServer) runSession(conn *websocket.Conn, claims *auth.GuestClaims) {
	defer conn.Close()
	defer gs.releaseSession(claims.Subject)

	fe := newWSFrontEnd(conn, gs.sessions, claims.Subject)
	go fe.readLoop()

	orchestrator := session.NewOrchestrator(fe)
	for !orchestrator.IsGameOver() && !fe.isClosed() {
		orchestrator.Step()
	}
	fe.send("sessionOver", nil)
	log.Printf("session %s finished in state %s", claims.Subject, orchestrator.State())
}

func randID() string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, 16)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
