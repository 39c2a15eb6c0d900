package selection

import (
	"testing"

	"likes-cli/internal/categories"

	"github.com/stretchr/testify/require"
)

type fixed bool

func (f fixed) AnySelected() bool { return bool(f) }

func TestAggregator_EmitsOnlyOnEdges(t *testing.T) {
	l, err := categories.New(categories.DefaultTitles())
	require.NoError(t, err)

	agg, cancel := Bind(l)
	defer cancel()

	var events []bool
	agg.Subscribe(func(v bool) { events = append(events, v) })

	require.NoError(t, l.Toggle(0))
	require.Equal(t, []bool{true}, events, "first selection emits true")

	require.NoError(t, l.Toggle(1))
	require.Equal(t, []bool{true}, events, "second selection stays silent")

	require.NoError(t, l.Toggle(0))
	require.Equal(t, []bool{true}, events, "deselecting one while another stays selected is silent")

	require.NoError(t, l.Toggle(1))
	require.Equal(t, []bool{true, false}, events, "last deselection emits false")
	require.False(t, agg.Value())
}

func TestAggregator_TwoSelectionsEmitOneEvent(t *testing.T) {
	l, err := categories.New([]string{"a", "b", "c"})
	require.NoError(t, err)
	agg, cancel := Bind(l)
	defer cancel()

	n := 0
	agg.Subscribe(func(v bool) {
		require.True(t, v)
		n++
	})
	require.NoError(t, l.Toggle(2))
	require.NoError(t, l.Toggle(0))
	require.Equal(t, 1, n)
	require.True(t, agg.Value())
}

func TestAggregator_InitialFalseIsNotEmitted(t *testing.T) {
	a := New()
	n := 0
	a.Subscribe(func(bool) { n++ })

	require.False(t, a.OnCategoryChanged(fixed(false)))
	require.Equal(t, 0, n)
	require.True(t, a.OnCategoryChanged(fixed(true)))
	require.False(t, a.OnCategoryChanged(fixed(true)))
	require.Equal(t, 1, n)
}

func TestAggregator_SubscribeCancel(t *testing.T) {
	a := New()
	n := 0
	cancel := a.Subscribe(func(bool) { n++ })
	a.OnCategoryChanged(fixed(true))
	cancel()
	a.OnCategoryChanged(fixed(false))
	require.Equal(t, 1, n)
	require.False(t, a.Value())
}

func TestBind_CancelStopsFeeding(t *testing.T) {
	l, err := categories.New([]string{"a"})
	require.NoError(t, err)
	agg, cancel := Bind(l)
	cancel()

	require.NoError(t, l.Toggle(0))
	require.False(t, agg.Value(), "unbound aggregator must not see mutations")
}
