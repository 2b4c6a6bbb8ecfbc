package encode

import (
	"bytes"
	"strings"
	"sync"
)

// lockedBuffer collects ffmpeg's stderr. The process writes from its own
// goroutine while Close reads the tail, so access is serialized.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Tail returns up to n trailing bytes of captured output, trimmed. The tail
// is where ffmpeg prints the reason it died.
func (b *lockedBuffer) Tail(n int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buf.Bytes()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return strings.TrimSpace(string(s))
}
