package calculation

import (
	"testing"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeUSC(t *testing.T) {
	rules := domain.DefaultConstants2025().USC

	t.Run("exempt at threshold", func(t *testing.T) {
		got := ComputeUSC(amt("13000"), rules)
		assert.True(t, got.Exempt)
		assert.Empty(t, got.Bands)
		assert.True(t, got.Total.IsZero())
	})

	t.Run("just above threshold charges from the first euro", func(t *testing.T) {
		got := ComputeUSC(amt("13000.01"), rules)
		assert.False(t, got.Exempt)
		require.Len(t, got.Bands, 2)
		assertMoney(t, "12012", got.Bands[0].Amount)
		assertMoney(t, "60.06", got.Bands[0].Tax)
		assertMoney(t, "988.01", got.Bands[1].Amount)
		assertMoney(t, "19.76", got.Bands[1].Tax)
		assertMoney(t, "79.82", got.Total)
	})

	t.Run("thirty thousand", func(t *testing.T) {
		got := ComputeUSC(amt("30000"), rules)
		require.Len(t, got.Bands, 3)
		assertMoney(t, "60.06", got.Bands[0].Tax)
		assertMoney(t, "307.40", got.Bands[1].Tax)
		assertMoney(t, "78.54", got.Bands[2].Tax)
		assertMoney(t, "446.00", got.Total)
	})

	t.Run("surcharge band", func(t *testing.T) {
		got := ComputeUSC(amt("100500"), rules)
		require.Len(t, got.Bands, 5)
		assertMoney(t, "1279.86", got.Bands[2].Tax)
		assertMoney(t, "2396.48", got.Bands[3].Tax)
		assertMoney(t, "500", got.Bands[4].Amount)
		assertMoney(t, "55", got.Bands[4].Tax)
		assertMoney(t, "4098.80", got.Total)
	})
}
