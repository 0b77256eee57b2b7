// Package export serializes filtered sales to the CSV format offered
// for download and parses it back.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ecom-dashboard/internal/models"
)

// Header is the CSV header for filtered_sales.csv.
const Header = "Date,Product,Category,Units Sold,Revenue,Region"

// Filename is the download name offered for the filtered export.
const Filename = "filtered_sales.csv"

const (
	numFields  = 6
	dateFormat = "2006-01-02"

	colDate     = 0
	colProduct  = 1
	colCategory = 2
	colUnits    = 3
	colRevenue  = 4
	colRegion   = 5
)

// WriteSales writes the header and one row per sale.
func WriteSales(w io.Writer, sales models.Dataset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, s := range sales {
		if err := cw.Write(MarshalSale(s)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadSales parses a previously exported CSV back into sales.
func ReadSales(r io.Reader) (models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading sales CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var sales models.Dataset
	for i, rec := range records[1:] {
		sale, err := UnmarshalSale(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		sales = append(sales, sale)
	}
	return sales, nil
}

// MarshalSale converts a Sale to a CSV row ([]string).
func MarshalSale(s models.Sale) []string {
	row := make([]string, numFields)
	row[colDate] = s.Date.Format(dateFormat)
	row[colProduct] = s.Product
	row[colCategory] = s.Category
	row[colUnits] = strconv.Itoa(s.Units)
	row[colRevenue] = s.Revenue.StringFixed(2)
	row[colRegion] = s.Region
	return row
}

// UnmarshalSale converts a CSV row to a Sale.
func UnmarshalSale(record []string) (models.Sale, error) {
	if len(record) != numFields {
		return models.Sale{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return models.Sale{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	units, err := strconv.Atoi(record[colUnits])
	if err != nil {
		return models.Sale{}, fmt.Errorf("parsing units %q: %w", record[colUnits], err)
	}

	revenue, err := decimal.NewFromString(record[colRevenue])
	if err != nil {
		return models.Sale{}, fmt.Errorf("parsing revenue %q: %w", record[colRevenue], err)
	}

	return models.Sale{
		Date:     date,
		Product:  record[colProduct],
		Category: record[colCategory],
		Units:    units,
		Revenue:  revenue,
		Region:   record[colRegion],
	}, nil
}
