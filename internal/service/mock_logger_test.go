package service

import "sync"

// mockLogger records messages so tests can assert on what was logged
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func (l *mockLogger) Info(msg string, fields ...interface{})  {}
func (l *mockLogger) Debug(msg string, fields ...interface{}) {}

func (l *mockLogger) Warn(msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *mockLogger) warningCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warnings)
}

func (l *mockLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}
