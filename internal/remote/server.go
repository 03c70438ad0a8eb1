// Package remote exposes the §6.1 REPL line grammar over a WebSocket
// endpoint, so a calculator session can be driven from a browser or
// another process instead of a terminal.
package remote

import (
	"context"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/websocket"
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/session"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// Server accepts WebSocket connections on /repl, handing each one its
// own Session and its own goroutine. Concurrency is bounded across
// sessions only: each individual session stays single-threaded, as
// spec.md §5 requires of every producer.
type Server struct {
	Base          digit.Base
	Addr          string
	MaxConcurrent int // 0 means unbounded

	tokenHash []byte // nil disables auth
	upgrader  websocket.Upgrader
	active    int64
}

// NewServer builds a Server. If token is non-empty, connecting clients
// must supply it as the "token" query parameter; the plaintext is
// hashed immediately and never retained.
func NewServer(base digit.Base, addr string, maxConcurrent int, token string) (*Server, error) {
	var hash []byte
	if token != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &Server{
		Base:          base,
		Addr:          addr,
		MaxConcurrent: maxConcurrent,
		tokenHash:     hash,
		upgrader:      websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}, nil
}

// ListenAndServe runs the HTTP/WebSocket listener until ctx is
// canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	group, gctx := errgroup.WithContext(ctx)
	if s.MaxConcurrent > 0 {
		group.SetLimit(s.MaxConcurrent)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/repl", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorize(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("remote: upgrade failed: %v", err)
			return
		}
		group.Go(func() error {
			return s.serveConn(gctx, conn)
		})
	})

	httpServer := &http.Server{Addr: s.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return group.Wait()
}

func (s *Server) authorize(r *http.Request) bool {
	if s.tokenHash == nil {
		return true
	}
	return bcrypt.CompareHashAndPassword(s.tokenHash, []byte(r.URL.Query().Get("token"))) == nil
}

func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	sess, err := session.New(s.Base)
	if err != nil {
		return err
	}
	n := atomic.AddInt64(&s.active, 1)
	log.Printf("remote: session %s connected, %s active", sess.ID, humanize.Comma(n))
	defer func() {
		n := atomic.AddInt64(&s.active, -1)
		log.Printf("remote: session %s disconnected, %s active", sess.ID, humanize.Comma(n))
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil
		}
		output, quit := sess.HandleLine(string(data))
		if output != "" {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(output)); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}
