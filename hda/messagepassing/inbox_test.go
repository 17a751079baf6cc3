package messagepassing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInboxFIFOOrder(t *testing.T) {
	ib := NewInbox()
	ib.Push(Message{Type: Work, FCost: 1})
	ib.Push(Message{Type: Work, FCost: 2})

	m1, ok := ib.Pop()
	require.True(t, ok)
	require.Equal(t, 1.0, m1.FCost)

	m2, ok := ib.Pop()
	require.True(t, ok)
	require.Equal(t, 2.0, m2.FCost)

	require.True(t, ib.Empty())
	_, ok = ib.Pop()
	require.False(t, ok)
}
