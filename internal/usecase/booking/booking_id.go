package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBookingID builds the externally exposed identifier: a millisecond
// clock component plus random bits, unique with overwhelming
// probability across the whole dataset.
func NewBookingID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("BOOK-%d-%s", now.UnixMilli(), suffix)
}
