package handlers

import (
	"database/sql"
	"log"
	"sync"

	"sjavs-go/internal/game"
	"sjavs-go/internal/game/sjavs"
	"sjavs-go/internal/models"
	ws "sjavs-go/pkg/websocket"
)

// DefaultTableName is the table every client lands on unless it names another.
const DefaultTableName = "main"

// TableManager owns the live tables. Tables are created lazily through the
// game registry, wired with a bot seater, a websocket event sink and a
// result-recording hook on rubber completion.
type TableManager struct {
	mu     sync.RWMutex
	tables map[string]*sjavs.Table

	registry *game.Registry
	db       *sql.DB
	hubRef   *ws.HubRef
	timeout  func(*sjavs.Table)
}

func NewTableManager(registry *game.Registry, db *sql.DB, hubRef *ws.HubRef) *TableManager {
	return &TableManager{
		tables:   map[string]*sjavs.Table{},
		registry: registry,
		db:       db,
		hubRef:   hubRef,
	}
}

// SetTableOptions applies per-table settings (idle timeout etc.) on creation.
func (m *TableManager) SetTableOptions(fn func(*sjavs.Table)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = fn
}

func (m *TableManager) Get(name string) (*sjavs.Table, bool) {
	if name == "" {
		name = DefaultTableName
	}
	m.mu.RLock()
	t, ok := m.tables[name]
	m.mu.RUnlock()
	return t, ok
}

// GetOrCreate returns the named table, building it on first use.
func (m *TableManager) GetOrCreate(name string) *sjavs.Table {
	if name == "" {
		name = DefaultTableName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[name]; ok {
		return t
	}
	t := m.buildLocked(name)
	m.tables[name] = t
	return t
}

func (m *TableManager) buildLocked(name string) *sjavs.Table {
	g, ok := m.registry.New("sjavs")
	if !ok {
		// The registry is seeded in main; a missing factory is a programming error.
		log.Panicf("game registry has no sjavs factory")
	}
	t := g.(*sjavs.Table)
	if m.timeout != nil {
		m.timeout(t)
	}
	t.AttachBots(sjavs.NewBotManager(t))

	room := "table:" + name
	t.SetEventSink(func(kind, message string) {
		if hub, ok := m.hubRef.Get(); ok {
			hub.Broadcast(room, kind, message)
		}
	})

	t.SetOnMatchEnd(func(rec sjavs.MatchRecord) {
		m.recordResult(name, rec)
	})
	return t
}

func (m *TableManager) recordResult(name string, rec sjavs.MatchRecord) {
	if m.db == nil {
		return
	}
	r := models.MatchResult{
		WinnerTeam: string(rec.Winner),
		VitScore:   rec.VitScore,
		TitScore:   rec.TitScore,
		DoubleWin:  rec.DoubleWin,
		Rounds:     rec.Rounds,
	}
	for _, s := range rec.Seats {
		r.Players = append(r.Players, models.MatchPlayer{
			Seat:   s.Seat,
			Name:   s.Name,
			UserID: s.UserID,
			Team:   string(s.Team),
			Won:    s.Won,
		})
	}
	if _, err := models.InsertMatchResult(m.db, r); err != nil {
		log.Printf("recordResult failed: table=%s winner=%s err=%v", name, rec.Winner, err)
	}
}
