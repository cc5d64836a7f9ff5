package bookkeeper

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/bookkeeper/date"
	"github.com/shopspring/decimal"
)

// This file contains the codec for the per-ledger record files. The format
// must be preserved exactly for interoperability with existing ledger data:
// a currency-declaration comment on the first line, then a CSV header row,
// then zero or more data rows.
//
//	# Currency: AUD
//	year,month,day,amount,category,description
//	2025,1,15,50.0,food,Lunch

const currencyPrefix = "# Currency: "

// currencyRe matches the mandatory currency-declaration line.
var currencyRe = regexp.MustCompile(`^# Currency: ([A-Z]{3,})$`)

// recordHeader is the canonical CSV column header.
var recordHeader = []string{"year", "month", "day", "amount", "category", "description"}

// DecodeRecords decodes a record file from r. It returns the currency
// declared on the first line ("" if the declaration is absent or malformed,
// which readers tolerate) and the data rows in file order. Rows that do not
// parse as records are silently dropped: the reader favors availability of
// the rest of the data over strict validation.
func DecodeRecords(r io.Reader) (currency string, records []Record) {
	br := bufio.NewReader(r)

	// The first line is special-cased: it carries the ledger currency as a
	// comment so no sidecar metadata file is needed.
	if b, err := br.Peek(1); err == nil && b[0] == '#' {
		line, _ := br.ReadString('\n')
		if m := currencyRe.FindStringSubmatch(strings.TrimRight(line, "\r\n")); m != nil {
			currency = m[1]
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // malformed row, skip
		}
		if len(row) > 0 && row[0] == recordHeader[0] {
			continue // column header
		}
		if rec, ok := decodeRow(row); ok {
			records = append(records, rec)
		}
	}
	return currency, records
}

// decodeRow parses one CSV data row into a Record. Rows missing a year field
// (blank trailing lines) or with an unparseable date or amount are rejected.
func decodeRow(row []string) (Record, bool) {
	if len(row) < 5 || strings.TrimSpace(row[0]) == "" {
		return Record{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return Record{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return Record{}, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return Record{}, false
	}
	rec := Record{
		Date:     date.New(year, time.Month(month), day),
		Amount:   amount,
		Category: row[4],
	}
	if len(row) > 5 {
		rec.Description = row[5]
	}
	return rec, true
}

// EncodeRecords writes a complete record file: currency declaration, column
// header, then the data rows in order. Writers always emit the currency line.
func EncodeRecords(w io.Writer, currency string, records []Record) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", currencyPrefix, upper(currency)); err != nil {
		return fmt.Errorf("could not write currency declaration: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return fmt.Errorf("could not write record header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(encodeRow(rec)); err != nil {
			return fmt.Errorf("could not write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeRecord appends a single data row to w.
func EncodeRecord(w io.Writer, rec Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(encodeRow(rec)); err != nil {
		return fmt.Errorf("could not write record: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// encodeRow decomposes the record date into year, month and day columns.
func encodeRow(rec Record) []string {
	return []string{
		strconv.Itoa(rec.Date.Year()),
		strconv.Itoa(int(rec.Date.Month())),
		strconv.Itoa(rec.Date.Day()),
		amountText(rec.Amount),
		rec.Category,
		rec.Description,
	}
}

// amountText renders an amount keeping the scale it was entered with, so an
// amount parsed from "50.0" is written back as "50.0", not "50".
func amountText(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
