package epochs

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUUIDTime(t *testing.T) {
	u, err := uuid.Parse("ca4892ce-4f7d-11ea-b77f-2e728ce88125")
	if err != nil {
		t.Fatalf("uuid.Parse failed: %v", err)
	}

	got, err := UUIDTime(u)
	checkTime(t, got, err, date(2020, time.February, 14, 23, 0, 27, 148155000))
}

func TestUUIDTimeMatchesRawConversion(t *testing.T) {
	// The timestamp bytes of the UUID above reassemble to 0x1ea4f7dca4892ce.
	u, err := uuid.Parse("ca4892ce-4f7d-11ea-b77f-2e728ce88125")
	if err != nil {
		t.Fatalf("uuid.Parse failed: %v", err)
	}

	fromUUID, err := UUIDTime(u)
	if err != nil {
		t.Fatalf("UUIDTime failed: %v", err)
	}
	fromRaw, err := UUIDv1(0x1ea4f7dca4892ce)
	if err != nil {
		t.Fatalf("UUIDv1 failed: %v", err)
	}
	if !fromUUID.Equal(fromRaw) {
		t.Errorf("Expected %v, got %v", fromRaw, fromUUID)
	}
}

func TestUUIDTimeWrongVersion(t *testing.T) {
	// Version 4 UUIDs are random and carry no timestamp.
	u, err := uuid.Parse("9c5b94b1-35ad-49bb-b118-8e8fc24abf80")
	if err != nil {
		t.Fatalf("uuid.Parse failed: %v", err)
	}

	if _, err := UUIDTime(u); !errors.Is(err, ErrNoTimestamp) {
		t.Errorf("Expected ErrNoTimestamp, got %v", err)
	}
}
