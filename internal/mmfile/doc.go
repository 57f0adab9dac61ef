// Package mmfile maps hive files read-only into memory. Unix builds use
// mmap, Windows builds use a file mapping view, and everything else falls
// back to reading the whole file.
package mmfile

// Mapping is a read-only view of a file's bytes. Bytes must not be used
// after Close.
type Mapping struct {
	data  []byte
	unmap func() error
}

// Bytes returns the mapped contents.
func (m *Mapping) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Len returns the number of mapped bytes.
func (m *Mapping) Len() int { return len(m.Bytes()) }

// Close releases the mapping. Calling it more than once is a no-op.
func (m *Mapping) Close() error {
	if m == nil || m.unmap == nil {
		return nil
	}
	unmap := m.unmap
	m.unmap = nil
	m.data = nil
	return unmap()
}

func noop() error { return nil }
