// Package identity implements the fallback policy that turns partially
// missing entity payloads into stable identities: blank display fields
// become "Unknown", and blank ids are derived deterministically from the
// remaining fields so repeated submissions of the same under-specified
// entity converge on one node.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Unknown is the fallback value for blank display fields.
const Unknown = "Unknown"

// Normalize prepares a field for hashing: surrounding whitespace is
// trimmed and the value is casefolded, so "  Jane " and "jane" derive
// the same id.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// IsBlank reports whether a field is empty after trimming.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// FillUnknown returns the trimmed field value, or Unknown when blank.
func FillUnknown(value string) string {
	if IsBlank(value) {
		return Unknown
	}
	return strings.TrimSpace(value)
}

// DeriveID computes a deterministic id from an entity's non-id fields.
// The field order is fixed by the caller and the label keeps different
// entity kinds in disjoint hash spaces. Every part is length-prefixed
// before joining, so a separator inside a field cannot shift field
// boundaries: identical inputs always yield the same id and unrelated
// entities cannot collide.
func DeriveID(label string, fields ...string) string {
	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, lengthPrefixed(label))
	for _, field := range fields {
		parts = append(parts, lengthPrefixed(field))
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(hash[:])
}

// lengthPrefixed normalizes a field and prepends its byte length, keeping
// the joined derivation input decodable into exactly one field list.
func lengthPrefixed(value string) string {
	normalized := Normalize(value)
	return fmt.Sprintf("%d:%s", len(normalized), normalized)
}

// FreshID returns a new unique id for an entity with no fields to derive
// from. Each call necessarily produces a distinct identity.
func FreshID() string {
	return uuid.NewString()
}
