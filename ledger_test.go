package bookkeeper

import (
	"errors"
	"testing"
)

func TestStorageKey(t *testing.T) {
	testCases := []struct {
		name  string
		owner string
		want  string
	}{
		{name: "default", owner: "rickey", want: "rickey-default"},
		{name: "travel", owner: "alice", want: "alice-travel"},
		{name: "default", owner: "", want: "local-default"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			l := NewLedger(tc.name, "AUD", tc.owner)
			if got := l.StorageKey(); got != tc.want {
				t.Errorf("StorageKey() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewLedgerNormalizesCurrency(t *testing.T) {
	l := NewLedger("default", " aud ", "rickey")
	if l.Currency() != "AUD" {
		t.Errorf("Currency() = %q, want AUD", l.Currency())
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"expense":  Expense,
		"expenses": Expense,
		"income":   Income,
		"Income":   Income,
	} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("loan"); err == nil {
		t.Error("ParseKind(loan) did not fail")
	}
}

func TestRecordValidate(t *testing.T) {
	valid := rec("2025-01-15", "50", "food", "")
	if err := valid.Validate(); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	negative := valid
	negative.Amount = dec("-1")
	if err := negative.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: got %v, want ErrInvalidAmount", err)
	}

	noCategory := valid
	noCategory.Category = " "
	if err := noCategory.Validate(); err == nil {
		t.Error("blank category accepted")
	}

	noDate := valid
	noDate.Date = Record{}.Date
	if err := noDate.Validate(); err == nil {
		t.Error("zero date accepted")
	}
}
