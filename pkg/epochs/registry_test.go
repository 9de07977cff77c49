package epochs

import (
	"errors"
	"sort"
	"testing"
	"time"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	kind, err := r.Lookup("chrome")
	if err != nil {
		t.Fatalf("Lookup(chrome) failed: %v", err)
	}
	if kind.Name != "chrome" {
		t.Errorf("Expected kind name chrome, got %s", kind.Name)
	}

	got, err := kind.Convert(12879041490654321)
	checkTime(t, got, err, date(2009, time.February, 13, 23, 31, 30, 654321000))
}

func TestRegistryLookupUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("klingon"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()

	err := r.Add(Kind{
		Name:      "unix_minutes",
		Reference: date(1970, time.January, 1, 0, 0, 0, 0),
		Convert: func(num int64) (time.Time, error) {
			return Unix(num * 60)
		},
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	kind, err := r.Lookup("unix_minutes")
	if err != nil {
		t.Fatalf("Lookup failed after Add: %v", err)
	}
	got, err := kind.Convert(1)
	checkTime(t, got, err, date(1970, time.January, 1, 0, 1, 0, 0))
}

func TestRegistryAddDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(Kind{Name: "unix"}); !errors.Is(err, ErrDuplicateKind) {
		t.Errorf("Expected ErrDuplicateKind, got %v", err)
	}
	if err := r.Add(Kind{}); !errors.Is(err, ErrBadSpec) {
		t.Errorf("Expected ErrBadSpec for unnamed kind, got %v", err)
	}
}

func TestRegistryKindsSorted(t *testing.T) {
	r := NewRegistry()
	kinds := r.Kinds()

	if len(kinds) != len(builtinKinds) {
		t.Fatalf("Expected %d kinds, got %d", len(builtinKinds), len(kinds))
	}
	if !sort.SliceIsSorted(kinds, func(i, j int) bool { return kinds[i].Name < kinds[j].Name }) {
		t.Error("Kinds() is not sorted by name")
	}
}

func TestRegistryZeroMatchesReference(t *testing.T) {
	r := NewRegistry()
	for _, kind := range r.Kinds() {
		got, err := kind.Convert(0)
		if err != nil {
			t.Fatalf("%s.Convert(0) failed: %v", kind.Name, err)
		}
		if !got.Equal(kind.Reference) {
			t.Errorf("%s.Convert(0): expected reference %v, got %v", kind.Name, kind.Reference, got)
		}
	}
}
