package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codeError{code: "SHOP_NOT_FOUND"}
	wrapped := Wrap(fmt.Errorf("lookup: %w", base), "update shop")

	got, ok := AsType[*codeError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsChain(t *testing.T) {
	sentinel := New("sentinel")

	assert.True(t, Is(Wrap(sentinel, "context"), sentinel))
	assert.True(t, Is(WithStack(sentinel), sentinel))
	assert.Nil(t, Wrap(nil, "context"))
}
