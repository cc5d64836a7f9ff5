package bookkeeper

import (
	"fmt"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Errors reported by the currency table and the ledger store creation paths.
var (
	ErrUnsupportedCurrency = fmt.Errorf("unsupported currency")
	ErrInvalidAmount       = fmt.Errorf("invalid amount")
	ErrInvalidRate         = fmt.Errorf("invalid rate")
)

// BaseCurrency is the reference currency against which all rates are
// expressed. Its rate is always exactly 1 and cannot be updated.
const BaseCurrency = "AUD"

// FallbackCurrency is assumed when a ledger's currency header cannot be read.
const FallbackCurrency = "USD"

// defaultRates is the static table of exchange rates relative to the base
// currency (1 AUD = rate units of the listed currency). These are sample
// rates, not live data.
var defaultRates = []struct {
	code string
	rate string
}{
	{"AUD", "1"},
	{"USD", "0.65"},
	{"CNY", "4.70"},
	{"EUR", "0.60"},
	{"GBP", "0.52"},
	{"JPY", "98.50"},
	{"CAD", "0.89"},
	{"HKD", "5.08"},
}

// CurrencyNames maps each supported currency code to its display name. This
// is the enumerated set the store validates ledger creation against.
var CurrencyNames = map[string]string{
	"USD": "US Dollar",
	"CNY": "Chinese Yuan",
	"AUD": "Australian Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
	"CAD": "Canadian Dollar",
	"HKD": "Hong Kong Dollar",
}

// CurrencySupported reports whether the code belongs to the enumerated set.
func CurrencySupported(code string) bool {
	_, ok := CurrencyNames[upper(code)]
	return ok
}

// Rates is the exchange-rate table. It is an explicit state object rather
// than package-level state: mutations through SetRate are immediately visible
// to all subsequent conversions, and the table is safe for concurrent use.
type Rates struct {
	mu          sync.RWMutex
	order       []string
	rates       map[string]decimal.Decimal
	lastUpdated time.Time
}

// NewRates returns a rate table initialized with the static default rates.
func NewRates() *Rates {
	r := &Rates{
		rates:       make(map[string]decimal.Decimal, len(defaultRates)),
		lastUpdated: time.Now(),
	}
	for _, d := range defaultRates {
		r.order = append(r.order, d.code)
		r.rates[d.code] = decimal.RequireFromString(d.rate)
	}
	return r
}

// Supported returns the supported currency codes in the table's declaration order.
func (r *Rates) Supported() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// IsSupported reports whether the code is in the table.
func (r *Rates) IsSupported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rates[upper(code)]
	return ok
}

// RateBetween returns the unrounded number of 'to' units one unit of 'from' buys.
func (r *Rates) RateBetween(from, to string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rateBetween(from, to)
}

// rateBetween must be called with the lock held.
func (r *Rates) rateBetween(from, to string) (decimal.Decimal, error) {
	fromRate, ok := r.rates[upper(from)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, from)
	}
	toRate, ok := r.rates[upper(to)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, to)
	}
	// Both rates are expressed against the base, so the cross rate is their ratio.
	return toRate.Div(fromRate), nil
}

// Convert converts an amount between two supported currencies, rounded to 2
// decimal places. Identity conversions return the amount unchanged, unrounded.
func (r *Rates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", ErrInvalidAmount)
	}
	if upper(from) == upper(to) {
		return amount, nil
	}
	rate, err := r.RateBetween(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).Round(2), nil
}

// SetRate updates the rate of a currency against the base and bumps the
// last-updated timestamp. The base currency's rate cannot be changed.
func (r *Rates) SetRate(code string, rate decimal.Decimal) error {
	code = upper(code)
	if code == BaseCurrency {
		return fmt.Errorf("%w: cannot update the base currency %s", ErrUnsupportedCurrency, BaseCurrency)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rates[code]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("%w: rate must be positive, got %s", ErrInvalidRate, rate)
	}
	r.rates[code] = rate
	r.lastUpdated = time.Now()
	return nil
}

// RateInfo describes one currency of the table.
type RateInfo struct {
	Code         string
	Symbol       string          // currency grapheme, e.g. "$"
	RateToBase   decimal.Decimal // 1 base unit in this currency
	RateFromBase decimal.Decimal // 1 unit of this currency in base units, rounded to 4 decimals
	LastUpdated  time.Time
}

// Info returns the rate information for one currency code.
func (r *Rates) Info(code string) (RateInfo, error) {
	code = upper(code)
	r.mu.RLock()
	defer r.mu.RUnlock()
	rate, ok := r.rates[code]
	if !ok {
		return RateInfo{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	fromBase := decimal.NewFromInt(1)
	if code != BaseCurrency {
		fromBase = decimal.NewFromInt(1).Div(rate).Round(4)
	}
	info := RateInfo{
		Code:         code,
		RateToBase:   rate,
		RateFromBase: fromBase,
		LastUpdated:  r.lastUpdated,
	}
	if cur := money.GetCurrency(code); cur != nil {
		info.Symbol = cur.Grapheme
	}
	return info, nil
}

// Batch is the result of converting several single-currency amounts to a
// common target currency.
type Batch struct {
	Converted map[string]decimal.Decimal
	Total     decimal.Decimal
	Target    string
}

// ConvertBatch converts a mapping of currency to amount into the target
// currency and sums the results. Zero amounts are kept as zero without
// validating their currency code.
func (r *Rates) ConvertBatch(amounts map[string]decimal.Decimal, to string) (Batch, error) {
	if !r.IsSupported(to) {
		return Batch{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, to)
	}
	b := Batch{
		Converted: make(map[string]decimal.Decimal, len(amounts)),
		Target:    upper(to),
	}
	for code, amount := range amounts {
		if amount.IsZero() {
			b.Converted[code] = decimal.Zero
			continue
		}
		converted, err := r.Convert(amount, code, to)
		if err != nil {
			return Batch{}, err
		}
		b.Converted[code] = converted
		b.Total = b.Total.Add(converted)
	}
	b.Total = b.Total.Round(2)
	return b, nil
}
