package apperr

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindParse:             "ParseError",
		KindNotFound:          "NotFound",
		KindNameInUse:         "NameInUse",
		KindIO:                "IoError",
		KindSQL:                "SqlError",
		KindUnsupportedFormat: "UnsupportedFormat",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	a := NotFound("table %q", "orders")
	b := NotFound("table %q", "customers")
	if !errors.Is(a, b) {
		t.Error("expected two NotFound errors to match via errors.Is")
	}
	if errors.Is(a, Parse("bad syntax")) {
		t.Error("NotFound should not match Parse")
	}
}

func TestIsKind(t *testing.T) {
	err := NameInUse("t")
	if !IsKind(err, KindNameInUse) {
		t.Error("IsKind should report true for matching kind")
	}
	if IsKind(err, KindIO) {
		t.Error("IsKind should report false for mismatched kind")
	}
}

func TestIOWrapsUnderlying(t *testing.T) {
	base := errors.New("disk full")
	wrapped := IO(base)
	if !errors.Is(wrapped, base) {
		t.Error("IO() should preserve Unwrap chain to the underlying error")
	}
}

func TestNoCurrentFrameIsSQLKind(t *testing.T) {
	if !IsKind(NoCurrentFrame(), KindSQL) {
		t.Error("NoCurrentFrame should be a KindSQL error")
	}
}
