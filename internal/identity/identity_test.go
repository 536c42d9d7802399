package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestStubProviderStableIDs(t *testing.T) {
	p := NewStubProvider()
	ctx := context.Background()

	first, err := p.Identify(ctx, "alice-token")
	be.NilErr(t, err)
	again, err := p.Identify(ctx, "alice-token")
	be.NilErr(t, err)
	be.Equal(t, first.ID, again.ID)

	other, err := p.Identify(ctx, "bob-token")
	be.NilErr(t, err)
	if other.ID == first.ID {
		t.Fatal("distinct tokens must resolve to distinct users")
	}
}

func TestStubProviderEmptyToken(t *testing.T) {
	p := NewStubProvider()
	_, err := p.Identify(context.Background(), "")
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("Identify(\"\") error = %v, want ErrNoToken", err)
	}
}
