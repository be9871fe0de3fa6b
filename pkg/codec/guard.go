package codec

import (
	"time"

	"github.com/dmitrymomot/sealkit/pkg/clock"
)

// guard embeds issue times and enforces the optional max age.
//
// Tokens stamped in the future are accepted: clock skew between issuers is
// not defended against.
type guard struct {
	clock   clock.Clock
	maxAge  time.Duration
	bounded bool
}

func (g guard) stamp() int64 {
	return g.clock.Now().UnixMilli()
}

func (g guard) check(issuedAt int64) error {
	if !g.bounded {
		return nil
	}
	now := g.stamp()
	age := now - issuedAt
	// A hugely negative issuedAt overflows the subtraction.
	if issuedAt < 0 && age < now {
		return ErrTokenExpired
	}
	if age > g.maxAge.Milliseconds() {
		return ErrTokenExpired
	}
	return nil
}
