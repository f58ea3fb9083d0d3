package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialScreen(t *testing.T) {
	assert.Equal(t, Home, New(2, nil).Current())
	assert.Equal(t, Settings, New(0, nil).Current())
}

func TestSettingsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		from Screen
	}{
		{"from home", Home},
		{"from transaction", Transaction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(1, nil)
			if tt.from == Transaction {
				require.NoError(t, n.StartTransaction(1))
			}
			require.NoError(t, n.OpenSettings())
			assert.Equal(t, Settings, n.Current())
			require.NoError(t, n.Back())
			assert.Equal(t, tt.from, n.Current())
		})
	}
}

func TestBackWithoutRecordedScreen(t *testing.T) {
	resets := 0
	n := New(0, func() { resets++ })
	require.Equal(t, Settings, n.Current())

	require.NoError(t, n.Back())
	assert.Equal(t, Home, n.Current())
	assert.Equal(t, 1, resets)
	assert.ErrorIs(t, n.Back(), ErrInvalidTransition)
}

func TestStartTransactionGuard(t *testing.T) {
	n := New(1, nil)
	err := n.StartTransaction(0)
	assert.ErrorIs(t, err, ErrNoSellers)
	assert.Equal(t, Settings, n.Current())

	require.NoError(t, n.Back())
	assert.Equal(t, Home, n.Current())

	require.NoError(t, n.StartTransaction(3))
	assert.Equal(t, Transaction, n.Current())
	assert.ErrorIs(t, n.StartTransaction(3), ErrInvalidTransition)
}

func TestGoHomeResets(t *testing.T) {
	resets := 0
	n := New(1, func() { resets++ })
	require.NoError(t, n.StartTransaction(1))
	assert.Equal(t, 0, resets)

	n.GoHome()
	assert.Equal(t, Home, n.Current())
	assert.Equal(t, 1, resets)
}

func TestSyncForcesSettings(t *testing.T) {
	n := New(1, nil)
	n.Sync(1)
	assert.Equal(t, Home, n.Current())
	n.Sync(0)
	assert.Equal(t, Settings, n.Current())
	assert.ErrorIs(t, n.OpenSettings(), ErrInvalidTransition)
}
