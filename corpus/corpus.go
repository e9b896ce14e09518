// Package corpus exposes a sorted, newline-delimited key file as a
// random-access sequence so it can be binary searched in place.
//
// Lines are compared byte-wise (bytes.Compare), which for UTF-8 text is the
// same as ordering by code point. A trailing newline at the end of the file
// is optional, and a trailing '\r' is trimmed from every line.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	"github.com/tamirms/hashsearch"
	hserrors "github.com/tamirms/hashsearch/errors"
)

// Corpus is a read-only sorted key file.
//
// Thread Safety:
// - Len, At, Find, Verify and Checksum are safe for concurrent use
// - Close must only be called after all other calls have completed
type Corpus struct {
	// Memory map, nil for OpenBytes
	mmap mmap.MMap
	data []byte

	// Line i is data[starts[i]:ends[i]]
	starts []int
	ends   []int

	closed atomic.Bool
}

// Open memory-maps the key file at path.
// The file descriptor is closed before Open returns.
func Open(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer file.Close()
	return OpenFile(file)
}

// OpenFile memory-maps f. The caller is responsible for closing f and may do
// so as soon as OpenFile returns.
func OpenFile(f *os.File) (*Corpus, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat corpus file: %w", err)
	}
	// mmap(2) rejects zero-length mappings.
	if stat.Size() == 0 {
		return nil, hserrors.ErrEmptyCorpus
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap corpus file: %w", err)
	}

	c := &Corpus{
		mmap: mm,
		data: []byte(mm),
	}
	adviseSequential(c.data)
	if err := c.index(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	adviseRandom(c.data)
	return c, nil
}

// OpenBytes builds a Corpus over an in-memory buffer. Close is a no-op.
// The caller must not modify data while the Corpus is in use.
func OpenBytes(data []byte) (*Corpus, error) {
	c := &Corpus{data: data}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

// index records the offsets of every line in c.data.
func (c *Corpus) index() error {
	data := c.data
	for start := 0; start < len(data); {
		end := bytes.IndexByte(data[start:], '\n')
		next := len(data)
		if end < 0 {
			end = len(data)
		} else {
			end += start
			next = end + 1
		}
		lineEnd := end
		if lineEnd > start && data[lineEnd-1] == '\r' {
			lineEnd--
		}
		c.starts = append(c.starts, start)
		c.ends = append(c.ends, lineEnd)
		start = next
	}
	if len(c.starts) == 0 {
		return hserrors.ErrEmptyCorpus
	}
	return nil
}

// Close releases the mapping. Calling Close more than once is safe.
func (c *Corpus) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	if c.mmap != nil {
		return c.mmap.Unmap()
	}
	return nil
}

// Len returns the number of keys. It returns 0 after Close.
func (c *Corpus) Len() int {
	if c.closed.Load() {
		return 0
	}
	return len(c.starts)
}

func (c *Corpus) line(i int) []byte {
	return c.data[c.starts[i]:c.ends[i]]
}

// At returns the key on line i (0-based).
func (c *Corpus) At(i int) (string, error) {
	if c.closed.Load() {
		return "", hserrors.ErrCorpusClosed
	}
	if i < 0 || i >= len(c.starts) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", hserrors.ErrIndexRange, i, len(c.starts))
	}
	return string(c.line(i)), nil
}

// Find returns the line index of key using the given interval convention.
// An absent key yields an error wrapping ErrNotFound. With duplicate lines
// any matching index may be returned.
func (c *Corpus) Find(key string, conv hashsearch.Convention) (int, error) {
	if c.closed.Load() {
		return hashsearch.NotFound, hserrors.ErrCorpusClosed
	}
	if conv != hashsearch.Closed && conv != hashsearch.HalfOpen {
		return hashsearch.NotFound, fmt.Errorf("%w: %d", hserrors.ErrUnknownConvention, conv)
	}

	target := []byte(key)
	idx := hashsearch.SearchFunc(conv, len(c.starts), func(i int) int {
		return bytes.Compare(c.line(i), target)
	})
	if idx == hashsearch.NotFound {
		return hashsearch.NotFound, fmt.Errorf("%w: %q", hserrors.ErrNotFound, key)
	}
	return idx, nil
}

// Verify checks that the keys are in ascending order. Equal neighbours are
// allowed. The first out-of-order pair is reported in an error wrapping
// ErrUnsortedCorpus.
func (c *Corpus) Verify() error {
	if c.closed.Load() {
		return hserrors.ErrCorpusClosed
	}
	for i := 1; i < len(c.starts); i++ {
		if bytes.Compare(c.line(i-1), c.line(i)) > 0 {
			return fmt.Errorf("%w: line %d %q sorts after line %d %q",
				hserrors.ErrUnsortedCorpus, i-1, c.line(i-1), i, c.line(i))
		}
	}
	return nil
}

// Checksum returns the xxHash64 of the raw file contents.
func (c *Corpus) Checksum() (uint64, error) {
	if c.closed.Load() {
		return 0, hserrors.ErrCorpusClosed
	}
	return xxhash.Sum64(c.data), nil
}
