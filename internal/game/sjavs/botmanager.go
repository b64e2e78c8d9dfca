package sjavs

import (
	"errors"
	"fmt"
	"sync"
)

var botNames = []string{"Bogi", "Eirikur", "Hanus", "Jogvan", "Magga", "Runa", "Signar", "Tora"}

// BotManager fills empty seats with BotBrains on request and tears them down
// when the table resets.
type BotManager struct {
	mu    sync.Mutex
	table *Table
	bots  []*BotBrain
	next  int
}

func NewBotManager(table *Table) *BotManager {
	return &BotManager{table: table}
}

// EnsureBots joins up to requested bots (all free seats when nil).
func (m *BotManager) EnsureBots(requested *int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := 4
	if requested != nil {
		want = *requested
	}

	added := 0
	for added < want {
		name := m.nextName()
		seat, err := m.table.Join(name, 0, true)
		if err != nil {
			if errors.Is(err, ErrTableFull) {
				break
			}
			return "Could not add bots."
		}
		brain := NewBotBrain(name, seat, func(line string) string {
			return m.table.HandleLine(seat, line)
		})
		brain.Start()
		m.bots = append(m.bots, brain)
		added++
	}

	if added == 0 {
		return "No free seats."
	}
	return fmt.Sprintf("Added %d bots.", added)
}

// StopAll stops every running bot. Called after a forced table reset.
func (m *BotManager) StopAll() {
	m.mu.Lock()
	bots := m.bots
	m.bots = nil
	m.mu.Unlock()

	for _, b := range bots {
		b.Stop()
	}
}

func (m *BotManager) nextName() string {
	name := botNames[m.next%len(botNames)]
	if m.next >= len(botNames) {
		name = fmt.Sprintf("%s%d", name, m.next/len(botNames)+1)
	}
	m.next++
	return name
}
