package control

import "time"

// SessionCreateRequest is the body of POST /api/v1/session.
type SessionCreateRequest struct {
	RAMSize          uint   `json:"ramSize,omitempty"`          // RAM region size in bytes (default: 1 MiB)
	InstructionLimit uint64 `json:"instructionLimit,omitempty"` // Steps per Run call before yielding (default: 10,000,000)
}

// SessionCreateResponse is the response to POST /api/v1/session.
type SessionCreateResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStatusResponse is the response to GET /api/v1/session/{id}.
type SessionStatusResponse struct {
	SessionID string `json:"sessionId"`
	PC        uint32 `json:"pc"`
	Steps     uint64 `json:"steps"`
	Halted    bool   `json:"halted"`
	Error     string `json:"error,omitempty"`
}

// LoadRequest is the body of POST /api/v1/session/{id}/load.
type LoadRequest struct {
	// Code is the flat instruction stream, placed at address 0.
	Code []byte `json:"code"`
	// EntryPoint overrides PC after loading; defaults to 0.
	EntryPoint uint32 `json:"entryPoint,omitempty"`
}

// StepResponse is the response to POST /api/v1/session/{id}/step.
type StepResponse struct {
	PC       uint32 `json:"pc"`
	Halted   bool   `json:"halted"`
	Continue bool   `json:"continue"`
	Error    string `json:"error,omitempty"`
}

// RunResponse is the response to POST /api/v1/session/{id}/run.
type RunResponse struct {
	Result string `json:"result"` // "halted", "yielded", or "trapped"
	Steps  uint64 `json:"steps"`
	Error  string `json:"error,omitempty"`
}

// RegistersResponse is the response to GET /api/v1/session/{id}/registers.
type RegistersResponse struct {
	PC   uint32    `json:"pc"`
	Regs [32]int32 `json:"regs"`
}

// MemoryPeekResponse is the response to GET /api/v1/session/{id}/memory.
type MemoryPeekResponse struct {
	Address uint32 `json:"address"`
	Bytes   []byte `json:"bytes"`
}

// ErrorResponse wraps an error message for non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a side-effecting request with no other payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
