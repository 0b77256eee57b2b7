package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-dashboard/internal/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRoundTrip(t *testing.T) {
	sales := models.Dataset{
		{
			Date:     date(2025, 3, 14),
			Product:  "Classic Tee",
			Category: "Apparel",
			Units:    2,
			Revenue:  dec("31.37"),
			Region:   "North",
		},
		{
			Date:     date(2025, 3, 15),
			Product:  "Bluetooth Speaker",
			Category: "Electronics",
			Units:    1,
			Revenue:  dec("58.90"),
			Region:   "West",
		},
	}

	var buf bytes.Buffer
	err := WriteSales(&buf, sales)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))

	got, err := ReadSales(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range sales {
		assert.True(t, sales[i].Date.Equal(got[i].Date), "date mismatch row %d", i)
		assert.Equal(t, sales[i].Product, got[i].Product)
		assert.Equal(t, sales[i].Category, got[i].Category)
		assert.Equal(t, sales[i].Units, got[i].Units)
		assert.True(t, sales[i].Revenue.Equal(got[i].Revenue), "revenue mismatch row %d", i)
		assert.Equal(t, sales[i].Region, got[i].Region)
	}
}

func TestWriteSalesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSales(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}

func TestReadSalesEmptyInput(t *testing.T) {
	got, e := ReadSales(strings.NewReader(""))
	require.NoError(t, e)
	assert.Nil(t, got)
}

func TestReadSalesRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"bad date", Header + "\nnot-a-date,Classic Tee,Apparel,2,31.37,North\n"},
		{"bad units", Header + "\n2025-03-14,Classic Tee,Apparel,two,31.37,North\n"},
		{"bad revenue", Header + "\n2025-03-14,Classic Tee,Apparel,2,lots,North\n"},
		{"missing field", Header + "\n2025-03-14,Classic Tee,Apparel,2,31.37\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := ReadSales(strings.NewReader(tt.csv))
			assert.Error(t, e)
		})
	}
}

func TestMarshalSaleFieldOrder(t *testing.T) {
	row := MarshalSale(models.Sale{
		Date:     date(2025, 3, 14),
		Product:  "Backpack",
		Category: "Accessories",
		Units:    3,
		Revenue:  dec("126.5"),
		Region:   "East",
	})

	assert.Equal(t, []string{"2025-03-14", "Backpack", "Accessories", "3", "126.50", "East"}, row)
}
