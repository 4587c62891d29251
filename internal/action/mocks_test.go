package action

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"checkout-sdk/internal/reducer"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/transport"

	"github.com/stretchr/testify/require"
)

// recordedRequest is one call received by the fake backend
type recordedRequest struct {
	Method  string
	Path    string
	Query   string
	Headers http.Header
	Body    []byte
}

// MockBackend serves canned responses keyed by "METHOD /path"
type MockBackend struct {
	t        *testing.T
	server   *httptest.Server
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []recordedRequest
}

func newMockBackend(t *testing.T) *MockBackend {
	m := &MockBackend{t: t, handlers: map[string]http.HandlerFunc{}}
	m.server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.server.Close)
	return m
}

func (m *MockBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, recordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   r.URL.RawQuery,
		Headers: r.Header.Clone(),
		Body:    body,
	})
	handler, ok := m.handlers[r.Method+" "+r.URL.Path]
	m.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"not found","status":404}`))
		return
	}
	handler(w, r)
}

// On registers a handler for method and path
func (m *MockBackend) On(method, path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[method+" "+path] = handler
}

// OnJSON replies with status and v encoded as JSON
func (m *MockBackend) OnJSON(method, path string, status int, v any) {
	m.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", transport.ContentTypeJSON)
		w.WriteHeader(status)
		require.NoError(m.t, json.NewEncoder(w).Encode(v))
	})
}

func (m *MockBackend) Requests() []recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]recordedRequest(nil), m.requests...)
}

func (m *MockBackend) Client() *transport.Client {
	return transport.NewClient(m.server.URL)
}

func (m *MockBackend) URL() string {
	return m.server.URL
}

// signalLog subscribes to a store and records every applied signal
type signalLog struct {
	mu      sync.Mutex
	signals []signal.Signal
}

func newSignalLog(s *store.Store) *signalLog {
	l := &signalLog{}
	s.Subscribe(func(_ state.StoreState, sig signal.Signal) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.signals = append(l.signals, sig)
	})
	return l
}

func (l *signalLog) Types() []signal.Type {
	l.mu.Lock()
	defer l.mu.Unlock()
	types := make([]signal.Type, 0, len(l.signals))
	for _, sig := range l.signals {
		types = append(types, sig.Type)
	}
	return types
}

func (l *signalLog) Last() signal.Signal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.signals[len(l.signals)-1]
}

func newTestStore(initial state.StoreState) (*store.Store, *signalLog) {
	s := store.New(initial, reducer.All()...)
	return s, newSignalLog(s)
}
