package search

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
)

// HashJSON returns a content hash of v, computed by JSON-marshaling v and
// truncating a SHA-256 digest of the result to a uint64. It is offered as a
// convenience for State implementations that would rather derive Hash from
// their exported fields than hand-roll a hash, the same approach the
// teacher uses for computeIdempotencyKey.
//
// Truncating a cryptographic digest to 64 bits does not eliminate collision
// risk, it only makes it improbable. Graph-search deduplication compares
// Hash values only and never calls State.Equal, so two colliding states are
// treated as the same state; callers that cannot tolerate any collision
// risk should supply a stronger Hash of their own.
func HashJSON(v any) (uint64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	digest := sha256.Sum256(data)
	return binary.BigEndian.Uint64(digest[:8]), nil
}
