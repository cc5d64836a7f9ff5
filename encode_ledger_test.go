package bookkeeper

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/bookkeeper/date"
)

func TestDecodeRecords(t *testing.T) {
	input := strings.Join([]string{
		"# Currency: AUD",
		"year,month,day,amount,category,description",
		"2025,1,15,50.0,food,Lunch",
		"2025,2,5,100,shopping,",
		"",
	}, "\n")

	currency, records := DecodeRecords(strings.NewReader(input))
	if currency != "AUD" {
		t.Errorf("currency = %q, want AUD", currency)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	r0 := records[0]
	if r0.Date != date.New(2025, 1, 15) {
		t.Errorf("record 0 date = %s, want 2025-01-15", r0.Date)
	}
	if !r0.Amount.Equal(dec("50.0")) {
		t.Errorf("record 0 amount = %s, want 50.0", r0.Amount)
	}
	if r0.Category != "food" || r0.Description != "Lunch" {
		t.Errorf("record 0 = %+v, want food/Lunch", r0)
	}
	if records[1].Description != "" {
		t.Errorf("record 1 description = %q, want empty", records[1].Description)
	}
}

func TestDecodeRecordsLeniency(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		wantCurrency string
		wantCount    int
	}{
		{
			name:         "missing currency line is tolerated",
			input:        "year,month,day,amount,category,description\n2025,1,15,50,food,Lunch\n",
			wantCurrency: "",
			wantCount:    1,
		},
		{
			name:         "malformed currency line is no currency",
			input:        "# Currency: au\nyear,month,day,amount,category,description\n2025,1,15,50,food,Lunch\n",
			wantCurrency: "",
			wantCount:    1,
		},
		{
			name:         "row without year is dropped",
			input:        "# Currency: AUD\nyear,month,day,amount,category,description\n,1,15,50,food,Lunch\n2025,1,16,10,food,\n",
			wantCurrency: "AUD",
			wantCount:    1,
		},
		{
			name:         "row with unparseable amount is dropped",
			input:        "# Currency: AUD\nyear,month,day,amount,category,description\n2025,1,15,abc,food,Lunch\n",
			wantCurrency: "AUD",
			wantCount:    0,
		},
		{
			name:         "short row is dropped",
			input:        "# Currency: AUD\nyear,month,day,amount,category,description\n2025,1\n",
			wantCurrency: "AUD",
			wantCount:    0,
		},
		{
			name:         "empty file",
			input:        "",
			wantCurrency: "",
			wantCount:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			currency, records := DecodeRecords(strings.NewReader(tc.input))
			if currency != tc.wantCurrency {
				t.Errorf("currency = %q, want %q", currency, tc.wantCurrency)
			}
			if len(records) != tc.wantCount {
				t.Errorf("got %d records, want %d", len(records), tc.wantCount)
			}
		})
	}
}

func TestEncodeRecords(t *testing.T) {
	records := []Record{
		{Date: date.New(2025, 1, 15), Amount: dec("50.0"), Category: "food", Description: "Lunch"},
	}

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, "aud", records); err != nil {
		t.Fatal(err)
	}

	want := "# Currency: AUD\n" +
		"year,month,day,amount,category,description\n" +
		"2025,1,15,50.0,food,Lunch\n"
	if buf.String() != want {
		t.Errorf("EncodeRecords:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeRecordKeepsAmountText(t *testing.T) {
	// The amount column keeps the scale the amount was entered with: "50.0"
	// must not collapse to "50" on the way to disk.
	testCases := []struct {
		amount string
		want   string
	}{
		{"50.0", "2025,1,15,50.0,food,\n"},
		{"50.00", "2025,1,15,50.00,food,\n"},
		{"120", "2025,1,15,120,food,\n"},
		{"12.5", "2025,1,15,12.5,food,\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeRecord(&buf, rec("2025-01-15", tc.amount, "food", "")); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tc.want {
				t.Errorf("EncodeRecord amount %s wrote %q, want %q", tc.amount, buf.String(), tc.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []Record{
		{Date: date.New(2025, 1, 15), Amount: dec("50.0"), Category: "food", Description: "Lunch, with a comma"},
		{Date: date.New(2025, 12, 31), Amount: dec("9.99"), Category: "other", Description: `say "hi"`},
	}

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, "USD", records); err != nil {
		t.Fatal(err)
	}
	currency, got := DecodeRecords(&buf)
	if currency != "USD" {
		t.Errorf("currency = %q, want USD", currency)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if !recordsEqual(got[i], records[i]) {
			t.Errorf("record %d = %+v, want %+v", i, got[i], records[i])
		}
	}
}
