// Package clock provides the time source consumed by token codecs.
//
// Codecs read the current time through the Clock interface instead of calling
// time.Now directly, so expiry rules can be tested against a fixed instant.
//
//	c := clock.Fixed(time.UnixMilli(1_700_000_000_000))
//	c.Advance(time.Second)
package clock
