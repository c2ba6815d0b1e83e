package calculation

import (
	"testing"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeTaxBands(t *testing.T) {
	c := domain.DefaultConstants2025()

	t.Run("standard rate only", func(t *testing.T) {
		lines := IncomeTaxBands(amt("30000"), amt("44000"), c)
		require.Len(t, lines, 1)
		assertMoney(t, "30000", lines[0].Amount)
		assertMoney(t, "6000", lines[0].Tax)
		assert.Equal(t, "Standard rate (20%)", lines[0].Label)
	})

	t.Run("both rates", func(t *testing.T) {
		lines := IncomeTaxBands(amt("60000"), amt("44000"), c)
		require.Len(t, lines, 2)
		assertMoney(t, "44000", lines[0].Amount)
		assertMoney(t, "8800", lines[0].Tax)
		assertMoney(t, "16000", lines[1].Amount)
		assertMoney(t, "6400", lines[1].Tax)
		assert.Equal(t, "Higher rate (40%)", lines[1].Label)
	})

	t.Run("exactly at cutoff", func(t *testing.T) {
		lines := IncomeTaxBands(amt("44000"), amt("44000"), c)
		require.Len(t, lines, 1)
		assertMoney(t, "8800", lines[0].Tax)
	})

	t.Run("zero cutoff puts everything at higher rate", func(t *testing.T) {
		lines := IncomeTaxBands(amt("1000"), amt("0"), c)
		require.Len(t, lines, 1)
		assertMoney(t, "400", lines[0].Tax)
	})

	t.Run("no income no bands", func(t *testing.T) {
		assert.Empty(t, IncomeTaxBands(amt("0"), amt("44000"), c))
		assert.Empty(t, IncomeTaxBands(amt("-100"), amt("44000"), c))
	})

	t.Run("cent rounding per line", func(t *testing.T) {
		lines := IncomeTaxBands(amt("44000.03"), amt("44000"), c)
		require.Len(t, lines, 2)
		assertMoney(t, "0.01", lines[1].Tax) // 0.03 * 0.40 = 0.012
	})
}
