// Package rop defines Outcome, a two-variant value that is either a success
// carrying S or a failure carrying F. Outcomes are immutable; the combinators
// in the solo, async and chain packages build new outcomes from old ones.
//
// The failure payload is opaque: rop assigns it no meaning. The only
// condition rop raises itself is ErrInvalidPayload, when an outcome is built
// around an absent value.
package rop
