/*
Package history keeps the set of alert identifiers that have already been sent, so a scheduled
run does not repeat alerts from earlier runs.
*/
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const DefaultLimit = 500

// Manager is the seen-set. Membership is exact-match only; insertion order
// decides which ids survive truncation on Save.
type Manager struct {
	mutex    sync.Mutex
	filePath string
	limit    int
	order    []string
	seen     map[string]struct{}
	logger   *zap.Logger
}

// NewManager loads the seen-set from filePath. A missing or unreadable file
// yields an empty set; it never fails the run.
func NewManager(filePath string, limit int, logger *zap.Logger) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		filePath: filePath,
		limit:    limit,
		seen:     make(map[string]struct{}),
		logger:   logger,
	}
	m.load()
	return m
}

func (m *Manager) load() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Info("seen-set file not found, starting fresh", zap.String("path", m.filePath))
			return
		}
		m.logger.Warn("error reading seen-set file, starting fresh", zap.String("path", m.filePath), zap.Error(err))
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		m.logger.Warn("error unmarshalling seen-set JSON, starting fresh", zap.String("path", m.filePath), zap.Error(err))
		return
	}

	for _, id := range ids {
		m.add(id)
	}
	m.logger.Info("loaded seen-set", zap.Int("count", len(m.order)), zap.String("path", m.filePath))
}

func (m *Manager) add(id string) bool {
	if _, ok := m.seen[id]; ok {
		return false
	}
	m.seen[id] = struct{}{}
	m.order = append(m.order, id)
	return true
}

// Seen reports whether id has been recorded.
func (m *Manager) Seen(id string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, ok := m.seen[id]
	return ok
}

// Record adds id and reports whether it was new. Existing ids keep their position.
func (m *Manager) Record(id string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.add(id)
}

// Admit is the dedupe gate: true means id had not been seen and is now recorded.
func (m *Manager) Admit(id string) bool {
	return m.Record(id)
}

func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.order)
}

// IDs returns the most recent ids (at most the limit) in insertion order.
func (m *Manager) IDs() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.recent()
}

func (m *Manager) recent() []string {
	start := 0
	if len(m.order) > m.limit {
		start = len(m.order) - m.limit
	}
	out := make([]string, len(m.order)-start)
	copy(out, m.order[start:])
	return out
}

// Save overwrites the file with the most recent ids, dropping the oldest
// beyond the limit.
func (m *Manager) Save() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	ids := m.recent()

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal seen-set: %w", err)
	}

	if dir := filepath.Dir(m.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create seen-set directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(m.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write seen-set file %s: %w", m.filePath, err)
	}

	m.logger.Info("saved seen-set", zap.Int("count", len(ids)), zap.String("path", m.filePath))
	return nil
}

func (m *Manager) FilePath() string {
	return m.filePath
}
