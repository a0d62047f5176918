package control

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/rv32sandbox/emu/vm"
)

var (
	// ErrSessionNotFound is returned when a session ID has no backing session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotLoaded is returned when an operation requires a loaded program.
	ErrNotLoaded = errors.New("no program loaded in this session")
)

// Session is one sandboxed engine instance, addressable by ID over the
// control API.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	ram    uint
	limit  uint64
	Engine *vm.Engine // nil until /load is called
	halted bool
}

// Manager owns the set of live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create allocates a new session with the given resource limits.
func (m *Manager) Create(ram uint, limit uint64) (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}
	if ram == 0 {
		ram = 1 << 20
	}
	if limit == 0 {
		limit = 10_000_000
	}
	s := &Session{ID: id, CreatedAt: time.Now(), ram: ram, limit: limit}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return s, nil
}

// Get retrieves a session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Destroy removes a session.
func (m *Manager) Destroy(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// List returns every live session ID.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Load replaces the session's engine with one running code, entering
// at entryPoint.
func (s *Session) Load(code []byte, entryPoint uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mem := vm.NewFlatMemory(code, make([]byte, s.ram))
	engine, err := vm.NewEngine(mem, vm.Config{InstructionLimit: s.limit})
	if err != nil {
		return err
	}
	engine.PC = entryPoint
	s.Engine = engine
	s.halted = false
	return nil
}

func generateSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
