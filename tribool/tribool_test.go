package tribool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromBool(t *testing.T) {
	assert.Equal(t, True, NewFromBool(true))
	assert.Equal(t, False, NewFromBool(false))
}

func TestPredicates(t *testing.T) {
	assert.True(t, True.IsTrue())
	assert.False(t, True.IsFalse())
	assert.False(t, True.IsUndef())

	assert.True(t, False.IsFalse())
	assert.False(t, False.IsTrue())

	assert.True(t, Undef.IsUndef())
	assert.False(t, Undef.IsTrue())
	assert.False(t, Undef.IsFalse())
}

func TestString(t *testing.T) {
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "undef", Undef.String())
}
