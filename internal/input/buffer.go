package input

const initialCapacity = 4

// Buffer is an append-only byte buffer that doubles its capacity whenever it
// fills, keeping reallocations at O(log n) for n appended bytes.
type Buffer struct {
	data  []byte
	max   int
	grows int
}

// NewBuffer returns an empty buffer limited to max bytes. A max of zero or
// less means unlimited.
func NewBuffer(max int) *Buffer {
	return &Buffer{data: make([]byte, 0, initialCapacity), max: max}
}

// WriteByte appends c, growing the backing array when it is full.
func (b *Buffer) WriteByte(c byte) error {
	if b.max > 0 && len(b.data) >= b.max {
		return &LimitError{Limit: b.max}
	}
	if len(b.data) == cap(b.data) {
		b.grow()
	}
	b.data = append(b.data, c)
	return nil
}

func (b *Buffer) grow() {
	n := cap(b.data) * 2
	if n == 0 {
		n = initialCapacity
	}
	if b.max > 0 && n > b.max {
		n = b.max
	}
	next := make([]byte, len(b.data), n)
	copy(next, b.data)
	b.data = next
	b.grows++
}

// Bytes returns the buffered content. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Grows returns how many times the backing array was reallocated.
func (b *Buffer) Grows() int { return b.grows }
