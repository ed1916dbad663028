package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRecordId returns "<prefix><16 hex chars>", e.g. "PAY6F9619FF8B86D011".
// Each collection carries its own prefix (FIN, SCH, PAY) so ids never
// collide across id spaces.
func NewRecordId(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(suffix[:16])
}
