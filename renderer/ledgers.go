package renderer

import (
	"bytes"

	"github.com/etnz/bookkeeper"
	md "github.com/nao1215/markdown"
)

// LedgersMarkdown renders the list of an owner's ledgers.
func LedgersMarkdown(owner string, ledgers []bookkeeper.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Ledgers (guest session)"
	if owner != "" {
		title = "Ledgers of " + owner
	}
	doc.H1(title)

	if len(ledgers) == 0 {
		doc.PlainText("No ledgers yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(ledgers))
	for _, l := range ledgers {
		rows = append(rows, []string{l.Name(), l.Currency()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Currency"},
		Rows:   rows,
	})

	return doc.String()
}
