package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat-dev/finchat/internal/chat"
	"github.com/finchat-dev/finchat/internal/ledger"
	"github.com/finchat-dev/finchat/internal/parser"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()
	logger := log.New(io.Discard)
	p := parser.New(parser.Options{
		Now: func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) },
	})
	svc := ledger.NewService(root)
	return New(chat.New(p, svc, root, logger), svc, logger)
}

func postMessage(t *testing.T, srv *Server, message string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"message": message})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/message", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleMessage(t *testing.T) {
	srv := testServer(t)

	rec := postMessage(t, srv, "gastei 50 no mercado")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "R$ 50,00")
}

func TestHandleMessage_EmptyBody(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/message", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMessage_MethodNotAllowed(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/message", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleSummary(t *testing.T) {
	srv := testServer(t)

	rec := postMessage(t, srv, "recebi 3000 de salario")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = postMessage(t, srv, "gastei 500 no mercado")
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	out := httptest.NewRecorder()
	srv.Handler().ServeHTTP(out, req)
	require.Equal(t, http.StatusOK, out.Code)

	var sum struct {
		Balance       string `json:"balance"`
		TotalIncome   string `json:"total_income"`
		TotalExpenses string `json:"total_expenses"`
	}
	require.NoError(t, json.Unmarshal(out.Body.Bytes(), &sum))
	assert.Equal(t, "2500", sum.Balance)
	assert.Equal(t, "3000", sum.TotalIncome)
	assert.Equal(t, "500", sum.TotalExpenses)
}
