// Package qrcode generates the opaque identifiers printed as QR codes on passes.
package qrcode

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const randomBytes = 6

// Generate returns "<PREFIX>-<12 uppercase hex chars>".
func Generate(prefix string) string {
	id := uuid.New()

	return prefix + "-" + strings.ToUpper(hex.EncodeToString(id[:randomBytes]))
}
