package bookkeeper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Errors reported by the store's mutating operations.
var (
	ErrLedgerExists = fmt.Errorf("ledger already exists")
	ErrNoSuchRecord = fmt.Errorf("no such record")
)

// Store owns the on-disk representation of all ledgers under a single root
// folder. No other component writes to it. Operations are synchronous file
// reads and writes; the full-file-rewrite discipline used by delete and
// update is not safe under concurrent writers, the store assumes a single
// active session per ledger folder.
type Store struct {
	root string
}

// NewStore opens (creating if needed) the ledgers root folder.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("could not create ledgers root %q: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the ledgers root folder.
func (s *Store) Root() string { return s.root }

// CreateLedger creates a new ledger folder with its two record files, each
// carrying the currency declaration and column header. It fails with
// ErrUnsupportedCurrency for a currency outside the enumerated set and with
// ErrLedgerExists when the storage key is already taken. On any failure
// mid-creation the partially created folder is removed before the error
// propagates, so a failed creation leaves no trace.
func (s *Store) CreateLedger(name, currency, owner string) (Ledger, error) {
	if strings.TrimSpace(name) == "" {
		return Ledger{}, fmt.Errorf("ledger name cannot be empty")
	}
	if !CurrencySupported(currency) {
		return Ledger{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}
	l := NewLedger(name, currency, owner)
	folder := l.folder(s.root)
	if _, err := os.Stat(folder); err == nil {
		return Ledger{}, fmt.Errorf("ledger %q: %w", l.StorageKey(), ErrLedgerExists)
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return Ledger{}, fmt.Errorf("could not create ledger folder %q: %w", folder, err)
	}
	for _, kind := range []Kind{Expense, Income} {
		if err := s.writeFile(l, kind, l.Currency(), nil); err != nil {
			os.RemoveAll(folder)
			return Ledger{}, fmt.Errorf("could not create ledger %q: %w", l.StorageKey(), err)
		}
	}
	return l, nil
}

// CreateDefaultLedger is the idempotent wrapper used at session start: it
// creates the "default" ledger for the owner if absent, otherwise it returns
// a descriptor with the currency recovered from the existing expenses file
// header, falling back to the requested currency if the header is missing.
func (s *Store) CreateDefaultLedger(owner, currency string) (Ledger, error) {
	l, err := s.CreateLedger(DefaultLedgerName, currency, owner)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, ErrLedgerExists) {
		return Ledger{}, err
	}
	existing := NewLedger(DefaultLedgerName, currency, owner)
	if cur := s.declaredCurrency(existing); cur != "" {
		existing = NewLedger(DefaultLedgerName, cur, owner)
	}
	return existing, nil
}

// AddExpense appends one expense row to the ledger.
func (s *Store) AddExpense(l Ledger, rec Record) error { return s.AddRecord(l, Expense, rec) }

// AddIncome appends one income row to the ledger.
func (s *Store) AddIncome(l Ledger, rec Record) error { return s.AddRecord(l, Income, rec) }

// AddRecord appends one row of the given kind. The record date is decomposed
// to year, month and day at write time. There is no uniqueness or ordering
// constraint beyond append order.
func (s *Store) AddRecord(l Ledger, kind Kind, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	f, err := os.OpenFile(l.file(s.root, kind), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %s file: %w", kind, err)
	}
	defer f.Close()
	if err := EncodeRecord(f, rec); err != nil {
		return fmt.Errorf("could not append %s: %w", kind, err)
	}
	return nil
}

// Expenses returns the ledger's expense records in file order. A missing or
// unreadable file yields an empty sequence, not an error.
func (s *Store) Expenses(l Ledger) []Record { return s.Records(l, Expense) }

// Income returns the ledger's income records in file order. A missing or
// unreadable file yields an empty sequence, not an error.
func (s *Store) Income(l Ledger) []Record { return s.Records(l, Income) }

// Records reads all rows of one kind. Read paths degrade to empty results
// rather than propagating errors: a missing or corrupt file is "no data".
func (s *Store) Records(l Ledger, kind Kind) []Record {
	f, err := os.Open(l.file(s.root, kind))
	if err != nil {
		return nil
	}
	defer f.Close()
	_, records := DecodeRecords(f)
	return records
}

// DeleteExpense removes the expense at the given 0-based index.
func (s *Store) DeleteExpense(l Ledger, index int) error { return s.DeleteRecord(l, Expense, index) }

// DeleteIncome removes the income at the given 0-based index.
func (s *Store) DeleteIncome(l Ledger, index int) error { return s.DeleteRecord(l, Income, index) }

// DeleteRecord removes the record at the given position and rewrites the
// whole file, preserving the relative order of the remaining rows. It fails
// with ErrNoSuchRecord when the index is out of bounds or the file is
// absent. All indices after the removed one shift down by one: indices are
// only valid against the most recent read.
func (s *Store) DeleteRecord(l Ledger, kind Kind, index int) error {
	currency, records, err := s.readFile(l, kind)
	if err != nil {
		return fmt.Errorf("%w: %s %d", ErrNoSuchRecord, kind, index)
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("%w: %s %d", ErrNoSuchRecord, kind, index)
	}
	records = slices.Delete(records, index, index+1)
	return s.writeFile(l, kind, currency, records)
}

// UpdateExpense replaces the expense at the given 0-based index.
func (s *Store) UpdateExpense(l Ledger, index int, rec Record) error {
	return s.UpdateRecord(l, Expense, index, rec)
}

// UpdateIncome replaces the income at the given 0-based index.
func (s *Store) UpdateIncome(l Ledger, index int, rec Record) error {
	return s.UpdateRecord(l, Income, index, rec)
}

// UpdateRecord replaces the record at the given position in place, with the
// same bounds-check and full-rewrite discipline as DeleteRecord.
func (s *Store) UpdateRecord(l Ledger, kind Kind, index int, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	currency, records, err := s.readFile(l, kind)
	if err != nil {
		return fmt.Errorf("%w: %s %d", ErrNoSuchRecord, kind, index)
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("%w: %s %d", ErrNoSuchRecord, kind, index)
	}
	records[index] = rec
	return s.writeFile(l, kind, currency, records)
}

// Ledgers scans the root for the owner's ledger folders and returns their
// descriptors, currency recovered from each expenses file header (falling
// back to FallbackCurrency when unreadable). Order follows the sorted
// directory listing; callers must not rely on any other ordering.
func (s *Store) Ledgers(owner string) []Ledger {
	prefix := GuestOwner + "-"
	if owner != "" {
		prefix = owner + "-"
	}
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil
	}
	var ledgers []Ledger
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		name := strings.TrimPrefix(e.Name(), prefix)
		currency := FallbackCurrency
		if cur := s.declaredCurrency(NewLedger(name, "", owner)); cur != "" {
			currency = cur
		} else {
			log.Printf("warning: ledger %q has no currency declaration, assuming %s", e.Name(), FallbackCurrency)
		}
		ledgers = append(ledgers, NewLedger(name, currency, owner))
	}
	return ledgers
}

// LedgerExists reports whether the resolved folder exists. It does not
// validate the folder's content.
func (s *Store) LedgerExists(name, owner string) bool {
	_, err := os.Stat(NewLedger(name, "", owner).folder(s.root))
	return err == nil
}

// declaredCurrency recovers the currency declared in the ledger's expenses
// file header, or "" if missing or malformed.
func (s *Store) declaredCurrency(l Ledger) string {
	f, err := os.Open(l.file(s.root, Expense))
	if err != nil {
		return ""
	}
	defer f.Close()
	currency, _ := DecodeRecords(f)
	return currency
}

// readFile loads one record file in full, keeping the declared currency so a
// rewrite can re-emit it.
func (s *Store) readFile(l Ledger, kind Kind) (currency string, records []Record, err error) {
	f, err := os.Open(l.file(s.root, kind))
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	currency, records = DecodeRecords(f)
	if currency == "" {
		// Tolerated on read, but a rewrite must still declare a currency.
		currency = l.Currency()
	}
	return currency, records, nil
}

// writeFile rewrites one record file through a temporary file renamed over
// the original, so an interrupted rewrite never truncates the live file.
func (s *Store) writeFile(l Ledger, kind Kind, currency string, records []Record) error {
	target := l.file(s.root, kind)
	tmp, err := os.CreateTemp(filepath.Dir(target), kind.filename()+".tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary %s file: %w", kind, err)
	}
	if err := EncodeRecords(tmp, currency, records); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temporary %s file: %w", kind, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace %s file: %w", kind, err)
	}
	return nil
}
