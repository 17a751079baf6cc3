package hda_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/hdastar/hda"
	"github.com/stretchr/testify/require"
)

func TestFrontierOrdersByFCostAscending(t *testing.T) {
	f := hda.NewFrontier()
	f.Push(hda.FrontierEntry{Node: 3, FCost: 5})
	f.Push(hda.FrontierEntry{Node: 1, FCost: 1})
	f.Push(hda.FrontierEntry{Node: 2, FCost: 3})

	var order []hda.NodeId
	for !f.Empty() {
		e, ok := f.Pop()
		require.True(t, ok)
		order = append(order, e.Node)
	}
	require.Equal(t, []hda.NodeId{1, 2, 3}, order)
}

func TestFrontierPopEmpty(t *testing.T) {
	f := hda.NewFrontier()
	_, ok := f.Pop()
	require.False(t, ok)
}

func TestFrontierAllowsDuplicates(t *testing.T) {
	f := hda.NewFrontier()
	f.Push(hda.FrontierEntry{Node: 7, FCost: 2})
	f.Push(hda.FrontierEntry{Node: 7, FCost: 1})
	require.Equal(t, 2, f.Len())
}

func TestBoundMonotoneDecrease(t *testing.T) {
	b := hda.NewBound()
	require.True(t, b.Tighten(10))
	require.True(t, b.Tighten(5))
	require.False(t, b.Tighten(7)) // not an improvement
	require.Equal(t, 5.0, b.Value())
}

func TestOwnerModulus(t *testing.T) {
	require.Equal(t, 0, hda.Owner(0, 4))
	require.Equal(t, 1, hda.Owner(5, 4))
	require.Equal(t, 3, hda.Owner(7, 4))
}

func TestBarrierReleasesAllParticipants(t *testing.T) {
	const n = 8
	b := hda.NewBarrier(n)
	var wg sync.WaitGroup
	var mu sync.Mutex
	releasedBefore := 0

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			b.Wait()
			mu.Lock()
			releasedBefore++
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Equal(t, n, releasedBefore)
}

func TestBarrierIsReusable(t *testing.T) {
	const n = 4
	b := hda.NewBarrier(n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			b.Wait() // round 1
			b.Wait() // round 2
		}()
	}
	wg.Wait()
}
