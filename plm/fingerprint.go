package plm

import (
	"hash/fnv"
	"io"
)

// Fingerprint returns a deterministic hash over the message's canonical field
// values (from, to, flags, status, type). Two messages with identical fields
// always produce the same fingerprint, across processes and restarts, which
// makes it suitable as a deduplication key for repeated buffer contents.
func (m Message) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, string(m.From))
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, string(m.To))
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, m.Flags)
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, m.Status.String())
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, m.Type.String())

	return h.Sum64()
}
