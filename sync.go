package lxmseq

import (
	"fmt"
	"io"
	"sync"
)

// SyncWriter serializes writes from concurrent goroutines so that each
// Write or Printf lands as one unit.
type SyncWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func (w *SyncWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// Printf formats and writes under the lock.
func (w *SyncWriter) Printf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.w, format, args...)
}

// NewSyncWriter create a new SyncWriter. Wrapping a *SyncWriter returns it as is.
func NewSyncWriter(w io.Writer) *SyncWriter {
	if sw, ok := w.(*SyncWriter); ok {
		return sw
	}
	return &SyncWriter{w: w}
}
