package source

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"sync"
	"time"
)

// Crockford base32 keeps the alphabet in ASCII order, so encoded tokens sort
// the same way as their bytes.
var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// tokenSource yields ULID-style cache-busting tokens: a 48-bit millisecond
// timestamp, a 16-bit sequence and random tail. Tokens from one source are
// strictly increasing, even when the wall clock stalls or steps back.
type tokenSource struct {
	mu     sync.Mutex
	now    func() time.Time
	lastMs uint64
	seq    uint16
}

func newTokenSource() *tokenSource {
	return &tokenSource{now: time.Now}
}

func (t *tokenSource) Next() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ms := uint64(t.now().UnixMilli())
	switch {
	case ms > t.lastMs:
		t.lastMs = ms
		t.seq = 0
	case t.seq == ^uint16(0):
		t.lastMs++
		t.seq = 0
	default:
		t.seq++
	}

	var b [16]byte
	b[0] = byte(t.lastMs >> 40)
	b[1] = byte(t.lastMs >> 32)
	b[2] = byte(t.lastMs >> 24)
	b[3] = byte(t.lastMs >> 16)
	b[4] = byte(t.lastMs >> 8)
	b[5] = byte(t.lastMs)
	binary.BigEndian.PutUint16(b[6:8], t.seq)
	rand.Read(b[8:])

	return crockford.EncodeToString(b[:])
}
