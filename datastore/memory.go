package datastore

import (
	"sync"

	"github.com/color-game/schemefinder/catalog"
)

// MemorySchemeDatabase keeps rows in process, seeded from the embedded catalog.
type MemorySchemeDatabase struct {
	mu   sync.Mutex
	rows [][]string
}

func NewMemorySchemeDatabase(seed [][]string) *MemorySchemeDatabase {
	m := &MemorySchemeDatabase{}
	m.rows = cloneRows(seed)
	return m
}

func NewCatalogSchemeDatabase() (*MemorySchemeDatabase, error) {
	rows, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return NewMemorySchemeDatabase(rows), nil
}

func (m *MemorySchemeDatabase) GetAll() ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRows(m.rows), nil
}

func (m *MemorySchemeDatabase) Append(rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, cloneRows(rows)...)
	return nil
}

func (m *MemorySchemeDatabase) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
