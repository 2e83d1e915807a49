package datastore

import (
	"crypto/sha256"
	"encoding/hex"
)

// PathHashGenerator handles document path hash generation
type PathHashGenerator struct {
	hashLength int
}

// NewPathHashGenerator creates a new path hash generator
func NewPathHashGenerator(hashLength int) *PathHashGenerator {
	if hashLength <= 0 || hashLength > 64 {
		hashLength = 12 // Default hash length
	}
	return &PathHashGenerator{
		hashLength: hashLength,
	}
}

// GenerateHash creates a short stable hash for the document path
func (phg *PathHashGenerator) GenerateHash(filePath string) string {
	hasher := sha256.New()
	hasher.Write([]byte(filePath))
	return hex.EncodeToString(hasher.Sum(nil))[:phg.hashLength]
}
