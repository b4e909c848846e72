package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var (
	refMu   sync.Mutex
	refRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// GenerateRedemptionRef builds a human-readable reference for a reward
// redemption ledger entry.
func GenerateRedemptionRef(studentID uint) string {
	refMu.Lock()
	defer refMu.Unlock()

	nanoPart := time.Now().UnixNano() % 1000000
	randPart := refRand.Intn(900) + 100
	return fmt.Sprintf("RDM-%06d%03d%d", nanoPart, randPart, studentID)
}
