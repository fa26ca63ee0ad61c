package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/UltraPrikol/wallet/internal/model"
)

// Header is the CSV header for the ledger file.
const Header = "Date,Category,Amount,Description"

const (
	numFields = 4
	colDate   = 0
	colCat    = 1
	colAmount = 2
	colDesc   = 3
)

const byteOrderMark = "\ufeff"

// ReadRecords reads all records from a ledger CSV reader. Columns are
// located by header name, so a file whose header lists the four fields in
// another order still loads.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := columnOrder(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		ordered := make([]string, numFields)
		for i, c := range cols {
			ordered[c] = row[i]
		}
		records = append(records, UnmarshalRecord(ordered))
	}
	return records, nil
}

// columnOrder maps each header position to its canonical column index.
func columnOrder(header []string) ([]int, error) {
	fields := model.Fields()
	cols := make([]int, len(header))
	seen := make(map[int]bool, numFields)
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		idx := -1
		for j, f := range fields {
			if name == string(f) {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unexpected column %q in header (want %s)", name, Header)
		}
		if seen[idx] {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[idx] = true
		cols[i] = idx
	}
	return cols, nil
}

// WriteRecords writes the header followed by every record.
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendRecords writes records without a header.
func AppendRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row in header order.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date
	row[colCat] = string(rec.Category)
	row[colAmount] = rec.Amount
	row[colDesc] = rec.Description
	return row
}

// UnmarshalRecord converts a CSV row in header order to a Record. Values are
// taken verbatim; amounts are not validated here.
func UnmarshalRecord(row []string) model.Record {
	return model.Record{
		Date:        row[colDate],
		Category:    model.Category(row[colCat]),
		Amount:      row[colAmount],
		Description: row[colDesc],
	}
}
