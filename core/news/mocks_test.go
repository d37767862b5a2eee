package news

import (
	"context"
	"io"
	"strings"
	"sync"

	"donaldking-api/core/domain"
	"donaldking-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func feedResponse(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

// mockGenerator is a mock implementation of the ChatCompleter interface
type mockGenerator struct {
	completeFunc func(ctx context.Context, req domain.ChatRequest) (string, error)
	requests     []domain.ChatRequest
}

func (m *mockGenerator) Complete(ctx context.Context, req domain.ChatRequest) (string, error) {
	m.requests = append(m.requests, req)
	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}
	return "", nil
}

func generatorReturning(content string, err error) *mockGenerator {
	return &mockGenerator{
		completeFunc: func(ctx context.Context, req domain.ChatRequest) (string, error) {
			return content, err
		},
	}
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records every call
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }
