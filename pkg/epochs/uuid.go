package epochs

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoTimestamp is returned by UUIDTime for UUIDs that do not embed a
// timestamp (anything other than version 1).
var ErrNoTimestamp = errors.New("uuid embeds no timestamp")

// UUIDTime extracts the 60-bit timestamp buried in a version 1 UUID and
// converts it like any other uuid_v1 raw value. For
// ca4892ce-4f7d-11ea-b77f-2e728ce88125 the timestamp bytes reassemble to
// 0x1ea4f7dca4892ce, which is 2020-02-14T23:00:27.148155.
func UUIDTime(u uuid.UUID) (time.Time, error) {
	if u.Version() != 1 {
		return time.Time{}, ErrNoTimestamp
	}
	return UUIDv1(int64(u.Time()))
}
