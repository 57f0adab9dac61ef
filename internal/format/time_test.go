package format

import (
	"testing"
	"time"
)

func TestFiletimeRoundTrip(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	got := FiletimeToTime(TimeToFiletime(want))
	if !got.Equal(want) {
		t.Fatalf("round trip = %v, want %v", got, want)
	}
}

func TestFiletimeBeforeUnixEpoch(t *testing.T) {
	if got := FiletimeToTime(0); !got.Equal(time.Unix(0, 0)) {
		t.Fatalf("FiletimeToTime(0) = %v", got)
	}
}

func TestAlign(t *testing.T) {
	if Align8(1) != 8 || Align8(8) != 8 || Align8(9) != 16 {
		t.Fatalf("Align8 wrong")
	}
	if AlignHBIN(1) != 4096 || AlignHBIN(4097) != 8192 {
		t.Fatalf("AlignHBIN wrong")
	}
}
