package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/bookkeeper"
	md "github.com/nao1215/markdown"
)

// RecordsMarkdown renders records as a table. The index column shows each
// record's position for delete/edit; indices are only valid until the next
// mutation of the ledger.
func RecordsMarkdown(l bookkeeper.Ledger, kind bookkeeper.Kind, records []bookkeeper.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s records of %s", kind, l.Name()))

	if len(records) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}

	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(i),
			rec.Date.String(),
			Amount(rec.Amount, l.Currency()),
			rec.Category,
			rec.Description,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Date", "Amount", "Category", "Description"},
		Rows:   rows,
	})

	return doc.String()
}
