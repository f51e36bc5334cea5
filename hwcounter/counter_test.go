package hwcounter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_TakeResets(t *testing.T) {
	c := NewCell()
	c.Incr(3)
	c.Incr(2)
	c.Incr(0)
	c.Incr(-4)
	assert.Equal(t, uint64(5), c.CPU())

	u := c.Take()
	assert.Equal(t, Usage{CPU: 5}, u)
	assert.Equal(t, uint64(0), c.CPU())
	assert.Equal(t, Usage{}, c.Take())
}

func TestCell_Unchecked(t *testing.T) {
	c := NewCell()
	c.SetLimit(4)
	c.Incr(10)
	require.NoError(t, c.Err())
	assert.False(t, c.Take().Exhausted)
}

func TestCell_Checked(t *testing.T) {
	c := NewCell()
	c.SetLimit(4)
	c.SetChecked(true)
	assert.True(t, c.checked)

	c.Incr(4)
	require.NoError(t, c.Err(), "reaching the limit is allowed")

	c.Incr(1)
	err := c.Err()
	require.ErrorIs(t, err, ErrBudgetExhausted)
	assert.Contains(t, err.Error(), "limit 4")

	u := c.Take()
	assert.True(t, u.Exhausted)
	assert.Equal(t, uint64(5), u.CPU)
	require.NoError(t, c.Err(), "a new window starts fresh")
}

func TestCell_CheckedAfterTheFact(t *testing.T) {
	c := NewCell()
	c.SetLimit(2)
	c.Incr(3)
	require.NoError(t, c.Err())

	c.SetChecked(true)
	assert.ErrorIs(t, c.Err(), ErrBudgetExhausted)
}

func TestCell_UncheckClearsExhaustion(t *testing.T) {
	c := NewCell()
	c.SetLimit(1)
	c.SetChecked(true)
	c.Incr(5)
	require.ErrorIs(t, c.Err(), ErrBudgetExhausted)

	c.SetChecked(false)
	require.NoError(t, c.Err())

	c.Incr(1)
	require.NoError(t, c.Err())
	assert.Equal(t, Usage{CPU: 6}, c.Take())

	c.Incr(2)
	c.SetChecked(true)
	assert.ErrorIs(t, c.Err(), ErrBudgetExhausted, "re-checking applies the limit to the open window")
}

func TestCell_CheckedWithoutLimit(t *testing.T) {
	c := NewCell()
	c.SetChecked(true)
	c.Incr(1 << 30)
	assert.NoError(t, c.Err())
}

func TestAccumulator(t *testing.T) {
	var acc Accumulator

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := NewCell()
			c.Incr(10)
			acc.Add(c.Take())
		}()
	}
	wg.Wait()

	acc.Add(Usage{CPU: 1, Exhausted: true})

	assert.Equal(t, uint64(81), acc.CPU())
	assert.Equal(t, int64(9), acc.Windows())
	assert.Equal(t, int64(1), acc.ExhaustedWindows())
	assert.Equal(t, Usage{CPU: 81, Exhausted: true}, acc.Usage())
	assert.Equal(t, "cpu=81 exhausted=true", acc.Usage().String())
}
