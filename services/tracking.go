package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

const trackingPrefix = "PRCL"

// GenerateTrackingID produces a human-readable shipment code of the form
// PRCL-YYYYMMDD-RRRRRR, where the date is today's UTC date and the suffix is
// 3 random bytes upper-hex encoded. Codes are not globally unique (~1/16M
// collision odds per day); callers must gate generation behind the
// transaction-id idempotency check rather than rely on uniqueness here.
func GenerateTrackingID() string {
	date := time.Now().UTC().Format("20060102")

	buf := make([]byte, 3)
	io.ReadFull(rand.Reader, buf) //nolint:errcheck // crypto/rand does not fail on supported platforms
	random := strings.ToUpper(hex.EncodeToString(buf))

	return fmt.Sprintf("%s-%s-%s", trackingPrefix, date, random)
}
