package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditSession(t *testing.T) {
	var e EditSession[SellerDraft]

	_, active := e.Active()
	assert.False(t, active)
	assert.ErrorIs(t, e.Update(SellerDraft{Name: "x"}), ErrNoEdit)
	assert.ErrorIs(t, e.Commit(func(string, SellerDraft) error { return nil }), ErrNoEdit)

	e.Begin("s1", SellerDraft{Name: "Alice"})
	require.NoError(t, e.Update(SellerDraft{Name: "Alicia"}))

	boom := errors.New("rejected")
	err := e.Commit(func(string, SellerDraft) error { return boom })
	assert.ErrorIs(t, err, boom)
	id, active := e.Active()
	assert.True(t, active, "failed commit keeps the draft")
	assert.Equal(t, "s1", id)

	var applied SellerDraft
	require.NoError(t, e.Commit(func(id string, d SellerDraft) error {
		applied = d
		return nil
	}))
	assert.Equal(t, "Alicia", applied.Name)
	_, active = e.Active()
	assert.False(t, active)

	e.Begin("s2", SellerDraft{Name: "Bob"})
	e.Discard()
	assert.Equal(t, SellerDraft{}, e.Draft())
}
