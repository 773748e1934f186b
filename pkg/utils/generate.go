package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderCode creates a human-readable order reference with timestamp.
// Format: PREFIX-YYYYMMDD-HHMMSS-RANDOM, e.g. ORD-20250115-143010-0042.
func GenerateOrderCode(prefix string) string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("%s-%s-%s-%s", prefix, datePart, timePart, randomPart)
}
