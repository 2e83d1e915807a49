package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// SnapshotIDGenerator builds snapshot ids that are deterministic from
// content hash and creation time.
type SnapshotIDGenerator struct {
	hashLength int
}

// NewSnapshotIDGenerator creates a new snapshot id generator
func NewSnapshotIDGenerator(hashLength int) *SnapshotIDGenerator {
	if hashLength <= 0 || hashLength > 64 {
		hashLength = 16
	}
	return &SnapshotIDGenerator{
		hashLength: hashLength,
	}
}

// GenerateID creates an id of the form <timestamp>_<contentHash>
func (sig *SnapshotIDGenerator) GenerateID(content string, timestamp time.Time) string {
	hasher := sha256.New()
	hasher.Write([]byte(content))
	contentHash := hex.EncodeToString(hasher.Sum(nil))[:sig.hashLength]
	return fmt.Sprintf("%s_%s", timestamp.Format("20060102_150405"), contentHash)
}
