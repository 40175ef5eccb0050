package streamio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickdarling94/tsfile/bufpool"
)

type fakeSource struct {
	items   []int
	failAt  int64 // ReadByOrdinal fails once firstOrdinal >= failAt; -1 disables
}

func (s *fakeSource) ReadByOrdinal(firstOrdinal, count int64) ([]int, error) {
	if s.failAt >= 0 && firstOrdinal >= s.failAt {
		return nil, errors.New("boom")
	}

	return s.items[firstOrdinal : firstOrdinal+count], nil
}

func TestRange_YieldsAllItemsInOrder(t *testing.T) {
	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}
	src := &fakeSource{items: items, failAt: -1}
	pool := bufpool.NewPool[int]()

	var got []int
	for buf, err := range Range[int](pool, src, 0, 10, Window{InitSize: 3, GrowAfter: 2, LargeSize: 4}) {
		require.NoError(t, err)
		got = append(got, buf.Items()...)
	}

	require.Equal(t, items, got)
}

func TestRange_ZeroCountYieldsNothing(t *testing.T) {
	src := &fakeSource{items: nil, failAt: -1}
	pool := bufpool.NewPool[int]()

	count := 0
	for range Range[int](pool, src, 0, 0, Window{InitSize: 4, GrowAfter: 1, LargeSize: 8}) {
		count++
	}
	require.Equal(t, 0, count)
}

func TestRange_StopsAndYieldsErrorOnReadFailure(t *testing.T) {
	items := make([]int, 20)
	src := &fakeSource{items: items, failAt: 5}
	pool := bufpool.NewPool[int]()

	var sawErr error
	iterations := 0
	for buf, err := range Range[int](pool, src, 0, 20, Window{InitSize: 5, GrowAfter: 1, LargeSize: 5}) {
		iterations++
		if err != nil {
			sawErr = err
			require.Nil(t, buf)
			break
		}
	}

	require.Error(t, sawErr)
	require.Equal(t, 2, iterations) // first window (0..5) ok, second (5..10) fails
}

func TestRange_ConsumerCanStopEarly(t *testing.T) {
	items := make([]int, 100)
	src := &fakeSource{items: items, failAt: -1}
	pool := bufpool.NewPool[int]()

	count := 0
	for range Range[int](pool, src, 0, 100, Window{InitSize: 4, GrowAfter: 2, LargeSize: 8}) {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}
