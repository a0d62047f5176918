// Package control exposes a vm.Engine session over a small JSON/HTTP
// surface: create, load, step, run, inspect, destroy. It is the
// programmatic counterpart to the debugger package's interactive TUI.
package control

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rv32sandbox/emu/vm"
)

// Server is the HTTP front end over a Manager.
type Server struct {
	sessions *Manager
	mux      *http.ServeMux
	server   *http.Server
	port     int
}

// NewServer constructs a server listening on 127.0.0.1:port.
func NewServer(port int) *Server {
	s := &Server{sessions: NewManager(), mux: http.NewServeMux(), port: port}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/session", s.handleSessionCollection)
	s.mux.HandleFunc("/api/v1/session/", s.handleSessionRoute)
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Start runs the server until it is shut down or fails.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("control API listening on http://127.0.0.1:%d", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSessionCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateSession(w, r)
	case http.MethodGet:
		s.handleListSessions(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionCreateRequest
	if r.ContentLength != 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	session, err := s.sessions.Create(req.RAMSize, req.InstructionLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create session: %v", err))
		return
	}
	writeJSON(w, http.StatusCreated, SessionCreateResponse{SessionID: session.ID, CreatedAt: session.CreatedAt})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": s.sessions.List()})
}

// handleSessionRoute dispatches /api/v1/session/{id}[/action].
func (s *Server) handleSessionRoute(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/session/")
	parts := strings.SplitN(rest, "/", 2)
	sessionID := parts[0]
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id")
		return
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.handleStatus(w, session)
		case http.MethodDelete:
			s.handleDestroy(w, sessionID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	switch parts[1] {
	case "load":
		s.handleLoad(w, r, session)
	case "step":
		s.handleStep(w, session)
	case "run":
		s.handleRun(w, session)
	case "registers":
		s.handleRegisters(w, session)
	case "memory":
		s.handleMemory(w, r, session)
	default:
		writeError(w, http.StatusNotFound, "unknown route")
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, session *Session) {
	session.mu.Lock()
	defer session.mu.Unlock()
	resp := SessionStatusResponse{SessionID: session.ID, Halted: session.halted}
	if session.Engine != nil {
		resp.PC = session.Engine.PC
		resp.Steps = session.Engine.StepsTaken
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDestroy(w http.ResponseWriter, id string) {
	if err := s.sessions.Destroy(id); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "session destroyed"})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request, session *Session) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req LoadRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := session.Load(req.Code, req.EntryPoint); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "program loaded"})
}

func (s *Server) handleStep(w http.ResponseWriter, session *Session) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Engine == nil {
		writeError(w, http.StatusBadRequest, ErrNotLoaded.Error())
		return
	}
	cont, err := session.Engine.Step()
	resp := StepResponse{PC: session.Engine.PC, Continue: cont}
	if err != nil {
		session.halted = true
		resp.Error = err.Error()
		resp.Halted = true
		writeJSON(w, http.StatusOK, resp)
		return
	}
	if !cont {
		session.halted = true
		resp.Halted = true
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRun(w http.ResponseWriter, session *Session) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Engine == nil {
		writeError(w, http.StatusBadRequest, ErrNotLoaded.Error())
		return
	}
	result, err := session.Engine.Run()
	resp := RunResponse{Steps: session.Engine.StepsTaken}
	if err != nil {
		session.halted = true
		resp.Error = err.Error()
		resp.Result = "trapped"
		writeJSON(w, http.StatusOK, resp)
		return
	}
	switch result {
	case vm.RunHalted:
		session.halted = true
		resp.Result = "halted"
	case vm.RunYielded:
		resp.Result = "yielded"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegisters(w http.ResponseWriter, session *Session) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Engine == nil {
		writeError(w, http.StatusBadRequest, ErrNotLoaded.Error())
		return
	}
	var resp RegistersResponse
	resp.PC = session.Engine.PC
	for i := 0; i < vm.RegisterCount; i++ {
		v, _ := session.Engine.Regs.Get(i)
		resp.Regs[i] = v
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMemory(w http.ResponseWriter, r *http.Request, session *Session) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Engine == nil {
		writeError(w, http.StatusBadRequest, ErrNotLoaded.Error())
		return
	}
	addr, err := strconv.ParseUint(r.URL.Query().Get("addr"), 0, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid addr")
		return
	}
	const maxMemoryPeekLen = 1 << 16
	length, err := strconv.Atoi(r.URL.Query().Get("len"))
	if err != nil || length <= 0 {
		length = 16
	}
	if length > maxMemoryPeekLen {
		length = maxMemoryPeekLen
	}
	bytes := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		b, err := session.Engine.Memory.Load8(uint32(addr) + uint32(i))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("memory read failed: %v", err))
			return
		}
		bytes = append(bytes, b[0])
	}
	writeJSON(w, http.StatusOK, MemoryPeekResponse{Address: uint32(addr), Bytes: bytes})
}

func readJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
