// Package util contains small shared helpers for generating the opaque
// identifiers the marketplace data model is built on.
package util

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateStoreID derives a composite store id from the owning user's hex
// id: "<ownerHexID>-<5 random digits>". The prefix is what resolves the
// vendor document later, so it must be the owner's id verbatim.
func GenerateStoreID(ownerHexID string) string {
	return fmt.Sprintf("%s-%05d", ownerHexID, 10000+rand.IntN(90000))
}

// GenerateCartItemID returns a cart entry id: "_" followed by nine base36
// characters. Cart ids are matched by string equality, never by
// database-level addressing.
func GenerateCartItemID() string {
	return "_" + randomBase36(9)
}

// GenerateRandomKey returns a six-character uppercase base36 key. It serves
// both regenerated catalog item ids and promotion redemption codes.
func GenerateRandomKey() string {
	return strings.ToUpper(randomBase36(6))
}

// GenerateOrderNumber returns a small human-readable order number. It is
// shared across the multi-vendor split of one checkout and is not
// guaranteed unique; the checkout's mainkey is the authoritative key.
func GenerateOrderNumber() int {
	return 100000 + rand.IntN(900000)
}

func randomBase36(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(base36[rand.IntN(len(base36))])
	}

	return sb.String()
}
