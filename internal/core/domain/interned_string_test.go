package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/msb/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("Message")
	is2 := domain.NewInternedString("Message")

	assert.Equal(t, is1.Value(), is2.Value(), "identical strings share a handle")
	assert.Equal(t, "Message", is1.String())
}

func TestInternedString_Zero(t *testing.T) {
	var is domain.InternedString
	assert.Empty(t, is.String())
}
