package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

type apiResponse struct {
	status int
	body   any
}

// ApiMock serves canned storefront API responses and records the requests it receives.
// Paths without a configured response answer 200 with an empty list.
type ApiMock struct {
	mu               sync.Mutex
	server           *httptest.Server
	responses        map[string]apiResponse
	headersReceived  map[string][]http.Header
	requestsReceived map[string]int
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		responses:        map[string]apiResponse{},
		headersReceived:  map[string][]http.Header{},
		requestsReceived: map[string]int{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

// Reset drops configured responses and recorded requests.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]apiResponse{}
	a.headersReceived = map[string][]http.Header{}
	a.requestsReceived = map[string]int{}
}

func (a *ApiMock) SetResponse(method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = apiResponse{status: status, body: body}
}

// RequestCount returns how many times method and path were requested.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.requestsReceived[method+path]
}

// GetHeader returns a header of the index-th request to method and path.
func (a *ApiMock) GetHeader(method, path string, index int, key string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	headers := a.headersReceived[method+path]
	if index < 0 || index >= len(headers) {
		return ""
	}
	return headers[index].Get(key)
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	a.mu.Lock()
	a.requestsReceived[key]++
	a.headersReceived[key] = append(a.headersReceived[key], r.Header.Clone())
	resp, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		resp = apiResponse{status: http.StatusOK, body: []any{}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	if resp.body != nil {
		_ = json.NewEncoder(w).Encode(resp.body)
	}
}
