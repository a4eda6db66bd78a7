package mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/mdslide/mdslide/internal/core/domain"
)

// --- MockFontSource ---

// MockFontSource is a mock implementation of the FontSource interface for testing
type MockFontSource struct {
	mu         sync.Mutex
	families   []string
	shouldFail bool
	failError  error
	calls      int
}

// NewMockFontSource creates a font source that reports families
func NewMockFontSource(families ...string) *MockFontSource {
	return &MockFontSource{families: families}
}

func (m *MockFontSource) Families(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.shouldFail {
		if m.failError != nil {
			return nil, m.failError
		}
		return nil, fmt.Errorf("font query failed")
	}
	out := make([]string, len(m.families))
	copy(out, m.families)
	return out, nil
}

func (m *MockFontSource) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

func (m *MockFontSource) GetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// --- MockAssetWriter ---

// WriteCall records one Write invocation
type WriteCall struct {
	Dir      string
	FileName string
	Data     []byte
}

// MockAssetWriter keeps written assets in memory
type MockAssetWriter struct {
	mu         sync.Mutex
	calls      []WriteCall
	files      map[string][]byte
	shouldFail bool
	failError  error
}

func NewMockAssetWriter() *MockAssetWriter {
	return &MockAssetWriter{
		files: make(map[string][]byte),
	}
}

func (m *MockAssetWriter) Write(ctx context.Context, dir, fileName string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, WriteCall{Dir: dir, FileName: fileName, Data: data})
	if m.shouldFail {
		if m.failError != nil {
			return "", m.failError
		}
		return "", domain.IO("save_pasted_asset", dir, fmt.Errorf("write failed"))
	}
	path := filepath.Join(dir, fileName)
	m.files[path] = data
	return path, nil
}

func (m *MockAssetWriter) List(ctx context.Context, dir string) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []domain.Entry
	for path := range m.files {
		if filepath.Dir(path) == dir {
			entries = append(entries, domain.Entry{Name: filepath.Base(path), Path: path})
		}
	}
	return entries, nil
}

func (m *MockAssetWriter) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

func (m *MockAssetWriter) GetCalls() []WriteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]WriteCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// File returns the bytes last written to path
func (m *MockAssetWriter) File(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return data, ok
}
