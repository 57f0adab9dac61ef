package hivegen

import (
	"bytes"
	"io"
	"sync"
)

// Read is one ReadAt call seen by a Recorder.
type Read struct {
	Off int64
	N   int
}

// Recorder is a hive source that remembers every read issued against it.
type Recorder struct {
	src interface {
		io.ReaderAt
		Size() int64
	}

	mu    sync.Mutex
	reads []Read
}

// NewRecorder wraps image.
func NewRecorder(image []byte) *Recorder {
	return &Recorder{src: bytes.NewReader(image)}
}

// ReadAt implements io.ReaderAt.
func (r *Recorder) ReadAt(p []byte, off int64) (int, error) {
	r.mu.Lock()
	r.reads = append(r.reads, Read{Off: off, N: len(p)})
	r.mu.Unlock()
	return r.src.ReadAt(p, off)
}

// Size returns the image size.
func (r *Recorder) Size() int64 { return r.src.Size() }

// Reads returns a copy of the reads so far.
func (r *Recorder) Reads() []Read {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Read(nil), r.reads...)
}

// Touched reports whether any read covered absolute offset off.
func (r *Recorder) Touched(off int64) bool {
	for _, rd := range r.Reads() {
		if off >= rd.Off && off < rd.Off+int64(rd.N) {
			return true
		}
	}
	return false
}

// Reset forgets all reads.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.reads = nil
	r.mu.Unlock()
}
