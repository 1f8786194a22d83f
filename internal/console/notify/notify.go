// Package notify carries the short user-facing notices raised by console
// screens after every action.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier is safe to call from concurrent loaders.
type Notifier interface {
	Notify(n Notification)
}

func Info(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

func Error(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}

// WriterNotifier prints one line per notice.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(x Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	prefix := "•"
	if x.Variant == VariantDestructive {
		prefix = "✗"
	}
	if x.Description == "" {
		fmt.Fprintf(n.w, "%s %s\n", prefix, x.Title)
		return
	}
	fmt.Fprintf(n.w, "%s %s: %s\n", prefix, x.Title, x.Description)
}

// Recorder keeps every notice in order. Used by tests.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(x Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, x)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}
