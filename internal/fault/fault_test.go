package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructorsSetCategory(t *testing.T) {
	tests := []struct {
		err  *Error
		want Category
	}{
		{Validation("bad input"), CategoryValidation},
		{Connection("unreachable"), CategoryConnection},
		{NotFound("no such node"), CategoryNotFound},
		{Protocol("garbage frame"), CategoryProtocol},
		{WriteRejected("read-only"), CategoryWriteRejected},
		{Verification("mismatch"), CategoryVerification},
	}
	for _, tt := range tests {
		if tt.err.Category != tt.want {
			t.Errorf("category = %q, want %q", tt.err.Category, tt.want)
		}
	}
}

func TestErrorMessageExcludesCategory(t *testing.T) {
	err := Connection("could not connect to %s", "ws://example:5580/ws")
	want := "could not connect to ws://example:5580/ws"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrapPreservesChain(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	err := Connection("connect: %w", inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error through the fault")
	}

	// A further wrap still resolves to the fault.
	outer := fmt.Errorf("session: %w", err)
	var fe *Error
	if !errors.As(outer, &fe) {
		t.Fatal("errors.As should find *Error through an outer wrap")
	}
	if fe.Category != CategoryConnection {
		t.Errorf("category through wrap = %q, want %q", fe.Category, CategoryConnection)
	}
}

func TestCategoryOf(t *testing.T) {
	cat, ok := CategoryOf(fmt.Errorf("outer: %w", NotFound("node 3")))
	if !ok {
		t.Fatal("CategoryOf should report true for a categorized error")
	}
	if cat != CategoryNotFound {
		t.Errorf("CategoryOf = %q, want %q", cat, CategoryNotFound)
	}

	if _, ok := CategoryOf(errors.New("plain")); ok {
		t.Error("CategoryOf should report false for an uncategorized error")
	}
	if _, ok := CategoryOf(nil); ok {
		t.Error("CategoryOf should report false for nil")
	}
}
