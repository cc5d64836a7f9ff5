package bookkeeper

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestConvert(t *testing.T) {
	rates := NewRates()

	testCases := []struct {
		name   string
		amount string
		from   string
		to     string
		want   string
	}{
		{name: "usd to aud", amount: "100", from: "USD", to: "AUD", want: "153.85"},
		{name: "aud to usd", amount: "100", from: "AUD", to: "USD", want: "65"},
		{name: "aud to jpy", amount: "100", from: "AUD", to: "JPY", want: "9850"},
		{name: "cny to aud", amount: "50", from: "CNY", to: "AUD", want: "10.64"},
		{name: "lowercase codes", amount: "100", from: "usd", to: "aud", want: "153.85"},
		{name: "zero amount", amount: "0", from: "USD", to: "AUD", want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rates.Convert(dec(tc.amount), tc.from, tc.to)
			if err != nil {
				t.Fatalf("Convert(%s, %s, %s): %v", tc.amount, tc.from, tc.to, err)
			}
			if !got.Equal(dec(tc.want)) {
				t.Errorf("Convert(%s, %s, %s) = %s, want %s", tc.amount, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvertIdentityIsExact(t *testing.T) {
	rates := NewRates()
	// Identity conversion returns the amount unchanged, no rounding applied.
	amount := dec("123.456789")
	got, err := rates.Convert(amount, "USD", "usd")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(amount) {
		t.Errorf("identity conversion altered the amount: got %s, want %s", got, amount)
	}
}

func TestConvertErrors(t *testing.T) {
	rates := NewRates()

	if _, err := rates.Convert(dec("-1"), "USD", "AUD"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := rates.Convert(dec("1"), "XXX", "AUD"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("unknown source: got %v, want ErrUnsupportedCurrency", err)
	}
	if _, err := rates.Convert(dec("1"), "AUD", "XXX"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("unknown target: got %v, want ErrUnsupportedCurrency", err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	rates := NewRates()
	x := dec("100")
	// A cent rounded away in a low-valued currency (JPY) is worth up to half a
	// unit of a high-valued one on the way back.
	tolerance := dec("1")

	for _, from := range rates.Supported() {
		for _, to := range rates.Supported() {
			there, err := rates.Convert(x, from, to)
			if err != nil {
				t.Fatalf("Convert(%s, %s, %s): %v", x, from, to, err)
			}
			back, err := rates.Convert(there, to, from)
			if err != nil {
				t.Fatalf("Convert(%s, %s, %s): %v", there, to, from, err)
			}
			if back.Sub(x).Abs().GreaterThan(tolerance) {
				t.Errorf("round trip %s->%s->%s = %s, want %s +-%s", from, to, from, back, x, tolerance)
			}
		}
	}
}

func TestSupported(t *testing.T) {
	rates := NewRates()
	want := []string{"AUD", "USD", "CNY", "EUR", "GBP", "JPY", "CAD", "HKD"}
	got := rates.Supported()
	if len(got) != len(want) {
		t.Fatalf("Supported() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Supported()[%d] = %s, want %s (order must be stable)", i, got[i], want[i])
		}
	}
}

func TestSetRate(t *testing.T) {
	rates := NewRates()

	if err := rates.SetRate("AUD", dec("2")); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("updating the base currency: got %v, want ErrUnsupportedCurrency", err)
	}
	if err := rates.SetRate("XXX", dec("2")); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("updating an unknown currency: got %v, want ErrUnsupportedCurrency", err)
	}
	if err := rates.SetRate("USD", dec("0")); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("zero rate: got %v, want ErrInvalidRate", err)
	}
	if err := rates.SetRate("USD", dec("-1")); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("negative rate: got %v, want ErrInvalidRate", err)
	}

	// A successful update must be observed by the next conversion.
	if err := rates.SetRate("USD", dec("0.5")); err != nil {
		t.Fatalf("SetRate: %v", err)
	}
	got, err := rates.Convert(dec("100"), "AUD", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(dec("50")) {
		t.Errorf("Convert after SetRate = %s, want 50", got)
	}
}

func TestInfo(t *testing.T) {
	rates := NewRates()

	usd, err := rates.Info("usd")
	if err != nil {
		t.Fatal(err)
	}
	if usd.Code != "USD" {
		t.Errorf("Code = %s, want USD", usd.Code)
	}
	if !usd.RateToBase.Equal(dec("0.65")) {
		t.Errorf("RateToBase = %s, want 0.65", usd.RateToBase)
	}
	if !usd.RateFromBase.Equal(dec("1.5385")) {
		t.Errorf("RateFromBase = %s, want 1.5385 (rounded to 4 decimals)", usd.RateFromBase)
	}

	aud, err := rates.Info("AUD")
	if err != nil {
		t.Fatal(err)
	}
	if !aud.RateFromBase.Equal(dec("1")) || !aud.RateToBase.Equal(dec("1")) {
		t.Errorf("base currency rates = %s/%s, want exactly 1/1", aud.RateToBase, aud.RateFromBase)
	}

	if _, err := rates.Info("XXX"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("Info(XXX): got %v, want ErrUnsupportedCurrency", err)
	}
}

func TestConvertBatch(t *testing.T) {
	rates := NewRates()

	batch, err := rates.ConvertBatch(map[string]decimal.Decimal{
		"USD": dec("100"),
		"CNY": dec("50"),
		"EUR": dec("0"),
		"XXX": dec("0"), // zero amounts skip currency validation
	}, "AUD")
	if err != nil {
		t.Fatalf("ConvertBatch: %v", err)
	}
	if !batch.Converted["USD"].Equal(dec("153.85")) {
		t.Errorf("USD converted = %s, want 153.85", batch.Converted["USD"])
	}
	if !batch.Converted["CNY"].Equal(dec("10.64")) {
		t.Errorf("CNY converted = %s, want 10.64", batch.Converted["CNY"])
	}
	if !batch.Converted["XXX"].IsZero() {
		t.Errorf("zero amount with unknown code must stay zero, got %s", batch.Converted["XXX"])
	}
	if !batch.Total.Equal(dec("164.49")) {
		t.Errorf("Total = %s, want 164.49", batch.Total)
	}
	if batch.Target != "AUD" {
		t.Errorf("Target = %s, want AUD", batch.Target)
	}

	if _, err := rates.ConvertBatch(nil, "XXX"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("unsupported target: got %v, want ErrUnsupportedCurrency", err)
	}
	if _, err := rates.ConvertBatch(map[string]decimal.Decimal{"XXX": dec("1")}, "AUD"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("unknown entry with non-zero amount: got %v, want ErrUnsupportedCurrency", err)
	}
}
