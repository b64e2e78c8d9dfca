package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"

	"sjavs-go/internal/game/sjavs"
)

const joinPrefix = "Hallo, Eg eri "

// Server is the newline-framed TCP front end. A connection greets with
// "Hallo, Eg eri <name>" to claim a seat, then sends one protocol line per
// message; every line gets exactly one reply line back.
type Server struct {
	table *sjavs.Table

	mu sync.Mutex
	ln net.Listener
}

func NewServer(table *sjavs.Table) *Server {
	return &Server{table: table}
}

// ListenAndServe accepts connections until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("tcp listen %s: %w", addr, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	log.Printf("tcp transport listening on %s", ln.Addr())

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("tcp accept error: %v", err)
			continue
		}
		go s.serveConn(ctx, conn)
	}
}

func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	seat := 0
	name := ""
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 4096), 4096)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		reply := s.handle(&seat, &name, line)
		if _, err := fmt.Fprintf(conn, "%s\n", reply); err != nil {
			return
		}
	}
}

func (s *Server) handle(seat *int, name *string, line string) string {
	if strings.HasPrefix(line, joinPrefix) {
		n := strings.TrimSpace(strings.TrimPrefix(line, joinPrefix))
		if n == "" {
			return "Unknown command."
		}
		got, err := s.table.Join(n, 0, false)
		if err != nil {
			if errors.Is(err, sjavs.ErrTableFull) {
				return "Table is full."
			}
			return "Unknown command."
		}
		*seat = got
		*name = n
		return fmt.Sprintf("P%d", got)
	}

	if *seat == 0 {
		return "Session reset. Please rejoin."
	}

	// The seat may have been reclaimed after a timeout reset; a mismatched
	// occupant means this connection's session is gone.
	if current, ok := s.table.SeatName(*seat); ok && current != *name {
		*seat = 0
		if notice := s.table.ResetNotice(); notice != "" {
			return notice
		}
		return "Session reset. Please rejoin."
	}

	return s.table.HandleLine(*seat, line)
}
