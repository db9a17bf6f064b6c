package require

import (
	"errors"
	"testing"
)

func TestEqualPassesThrough(t *testing.T) {
	Equal(t, 1, 1)
}

func TestErrorIsPassesThrough(t *testing.T) {
	sentinel := errors.New("boom")
	ErrorIs(t, sentinel, sentinel)
}

func TestTruePassesThrough(t *testing.T) {
	True(t, 1+1 == 2)
}
