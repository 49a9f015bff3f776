package market_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
)

const jita = 30000142

func TestMarket_New_InvalidOrderFallsBackToSell(t *testing.T) {
	m := market.New(jita, market.Order(7), decimal.Zero)

	assert.Equal(t, market.OrderSell, m.Order())
	assert.False(t, m.IsManual())
}

func TestMarket_FromRecord_Defaults(t *testing.T) {
	// Act
	m := market.FromRecord(record.New(), jita)

	// Assert
	assert.True(t, m.Equal(market.Default(jita)))
}

func TestMarket_FromRecord_LegacySource(t *testing.T) {
	// Arrange
	rec := record.New()
	rec.PutInt("system", 30002187)
	rec.PutInt("source", int64(market.OrderBuy))

	// Act
	m := market.FromRecord(rec, jita)

	// Assert
	assert.Equal(t, market.OrderBuy, m.Order())
	assert.Equal(t, 30002187, m.System())
}

func TestMarket_FromRecord_OrderWinsOverSource(t *testing.T) {
	rec := record.New()
	rec.PutInt("source", int64(market.OrderBuy))
	rec.PutInt("order", int64(market.OrderManual))
	rec.PutString("manual", "12.34")

	m := market.FromRecord(rec, jita)

	assert.True(t, m.IsManual())
	assert.True(t, decimal.RequireFromString("12.34").Equal(m.ManualPrice()))
}

func TestMarket_FromRecord_UnknownOrderCode(t *testing.T) {
	rec := record.New()
	rec.PutInt("order", 9)

	m := market.FromRecord(rec, jita)

	assert.Equal(t, market.OrderSell, m.Order())
}

func TestMarket_RecordRoundTrip(t *testing.T) {
	// Arrange
	original := market.Manual(30002187, decimal.RequireFromString("1234.5678"))
	rec := record.New()

	// Act
	original.WriteRecord(rec)
	restored := market.FromRecord(rec, jita)

	// Assert
	assert.True(t, original.Equal(restored))
	assert.Equal(t, original.Key(), restored.Key())
}

func TestMarket_EqualIsNumeric(t *testing.T) {
	a := market.Manual(jita, decimal.RequireFromString("1.5"))
	b := market.Manual(jita, decimal.RequireFromString("1.50"))
	c := market.Manual(jita, decimal.RequireFromString("1.51"))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Key(), c.Key())
	assert.False(t, market.Default(jita).Equal(market.New(jita, market.OrderBuy, decimal.Zero)))
	assert.False(t, market.Default(jita).Equal(market.Default(30002187)))
}

func TestMarket_String(t *testing.T) {
	assert.Equal(t, "sell@30000142", market.Default(jita).String())
	assert.Equal(t, "manual 2.5", market.Manual(jita, decimal.RequireFromString("2.50")).String())
}

func TestParseOrder(t *testing.T) {
	cases := map[string]market.Order{
		"sell":    market.OrderSell,
		"BUY":     market.OrderBuy,
		" manual": market.OrderManual,
	}
	for name, expected := range cases {
		t.Run(name, func(t *testing.T) {
			o, err := market.ParseOrder(name)
			require.NoError(t, err)
			assert.Equal(t, expected, o)
		})
	}

	_, err := market.ParseOrder("auction")
	assert.ErrorIs(t, err, market.ErrInvalidOrder)
}

func TestOrderFromCode(t *testing.T) {
	o, ok := market.OrderFromCode(1)
	assert.True(t, ok)
	assert.Equal(t, market.OrderBuy, o)

	_, ok = market.OrderFromCode(-1)
	assert.False(t, ok)
	assert.Equal(t, "order(5)", market.Order(5).String())
}
