package control_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rv32sandbox/emu/control"
)

func doJSON(t *testing.T, srv http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestServer_SessionLifecycle(t *testing.T) {
	srv := control.NewServer(0)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/session", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created control.SessionCreateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.SessionID)

	// addi a0, zero, 30; ebreak
	code := []byte{0x13, 0x05, 0xE0, 0x01, 0x73, 0x00, 0x10, 0x00}
	loadResp := doJSON(t, srv.Handler(), http.MethodPost,
		"/api/v1/session/"+created.SessionID+"/load", control.LoadRequest{Code: code})
	assert.Equal(t, http.StatusOK, loadResp.Code)

	runResp := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/session/"+created.SessionID+"/run", nil)
	require.Equal(t, http.StatusOK, runResp.Code)
	var runBody control.RunResponse
	require.NoError(t, json.NewDecoder(runResp.Body).Decode(&runBody))
	assert.Equal(t, "halted", runBody.Result)

	regsResp := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/session/"+created.SessionID+"/registers", nil)
	require.Equal(t, http.StatusOK, regsResp.Code)
	var regsBody control.RegistersResponse
	require.NoError(t, json.NewDecoder(regsResp.Body).Decode(&regsBody))
	assert.Equal(t, int32(30), regsBody.Regs[10]) // a0

	destroyResp := doJSON(t, srv.Handler(), http.MethodDelete, "/api/v1/session/"+created.SessionID, nil)
	assert.Equal(t, http.StatusOK, destroyResp.Code)
}

func TestServer_StepWithoutLoadFails(t *testing.T) {
	srv := control.NewServer(0)
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/session", nil)
	var created control.SessionCreateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	stepResp := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/session/"+created.SessionID+"/step", nil)
	assert.Equal(t, http.StatusBadRequest, stepResp.Code)
}

func TestServer_UnknownSessionReturns404(t *testing.T) {
	srv := control.NewServer(0)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/session/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
