package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCurrency(t *testing.T, code string) kernel.Currency {
	t.Helper()
	cur, err := kernel.NewCurrency(code)
	require.NoError(t, err)
	return cur
}

func TestNewMoney(t *testing.T) {
	usd := mustCurrency(t, "USD")

	t.Run("should create money with non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(100), usd)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
		assert.True(t, m.Currency().IsEqual(usd))
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewZeroMoney(usd)

		require.NoError(t, err)
		assert.True(t, m.Amount().IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), usd)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should reject unconstructed currency", func(t *testing.T) {
		var cur kernel.Currency

		_, err := kernel.NewMoney(decimal.NewFromInt(1), cur)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCurrencyIsNotConstructed, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should reject zero value money", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Add(t *testing.T) {
	usd := mustCurrency(t, "USD")
	pen := mustCurrency(t, "PEN")

	t.Run("should sum amounts of equal currencies", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(200), usd)
		b, _ := kernel.NewMoney(decimal.NewFromInt(1000), usd)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(1200)))
		assert.True(t, sum.Currency().IsEqual(usd))
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(200), usd)
		b, _ := kernel.NewMoney(decimal.NewFromInt(1000), usd)

		_, err := a.Add(b)

		require.NoError(t, err)
		assert.True(t, a.Amount().Equal(decimal.NewFromInt(200)))
		assert.True(t, b.Amount().Equal(decimal.NewFromInt(1000)))
	})

	t.Run("should fail on currency mismatch", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)
		b, _ := kernel.NewMoney(decimal.NewFromInt(100), pen)

		_, err := a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
		assert.Contains(t, err.Error(), "USD")
		assert.Contains(t, err.Error(), "PEN")
	})

	t.Run("should fail when an operand is unconstructed", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_Multiply(t *testing.T) {
	usd := mustCurrency(t, "USD")

	t.Run("should scale the amount keeping the currency", func(t *testing.T) {
		m, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)

		scaled, err := m.Multiply(decimal.NewFromInt(2))

		require.NoError(t, err)
		assert.True(t, scaled.Amount().Equal(decimal.NewFromInt(200)))
		assert.True(t, scaled.Currency().IsEqual(usd))
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("should allow zero factor", func(t *testing.T) {
		m, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)

		scaled, err := m.Multiply(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, scaled.Amount().IsZero())
	})

	t.Run("should reject negative factor", func(t *testing.T) {
		m, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)

		_, err := m.Multiply(decimal.NewFromInt(-2))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "factor")
	})
}

func TestMoney_IsEqual(t *testing.T) {
	usd := mustCurrency(t, "USD")
	pen := mustCurrency(t, "PEN")

	t.Run("should compare by amount and currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)
		b, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)
		c, _ := kernel.NewMoney(decimal.NewFromInt(100), pen)
		d, _ := kernel.NewMoney(decimal.NewFromInt(50), usd)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(d))
	})
}

func TestMoney_String(t *testing.T) {
	usd := mustCurrency(t, "USD")

	t.Run("should render amount with two fraction digits and code", func(t *testing.T) {
		m, _ := kernel.NewMoney(decimal.NewFromInt(1200), usd)

		assert.Equal(t, "1200.00 USD", m.String())
	})
}

func TestMoney_Format(t *testing.T) {
	usd := mustCurrency(t, "USD")

	t.Run("should delegate to locale-aware currency formatting", func(t *testing.T) {
		m, _ := kernel.NewMoney(decimal.NewFromInt(100), usd)

		assert.Contains(t, m.Format("en-US"), "$")
	})
}
