package transport

import "sync"

// Navigator abstracts the embedding application's routing so the 401 rule
// can redirect without the SDK knowing anything about the UI layer.
type Navigator interface {
	CurrentPath() string
	NavigateTo(path string)
}

// PathRecorder is the default Navigator: it tracks the current path and
// records navigations for the embedding app (or a test) to observe.
type PathRecorder struct {
	mu      sync.Mutex
	current string
	last    string
	count   int
}

// NewPathRecorder starts at the given path.
func NewPathRecorder(current string) *PathRecorder {
	return &PathRecorder{current: current}
}

// CurrentPath returns the path the recorder believes the app is on.
func (p *PathRecorder) CurrentPath() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// NavigateTo records the navigation and moves the current path.
func (p *PathRecorder) NavigateTo(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = path
	p.last = path
	p.count++
}

// SetCurrentPath lets the embedding app report route changes.
func (p *PathRecorder) SetCurrentPath(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = path
}

// LastNavigation returns the most recent target, empty if none.
func (p *PathRecorder) LastNavigation() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Navigations returns how many redirects were issued.
func (p *PathRecorder) Navigations() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}
