package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bookkeeper"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a per-ledger aggregation to a markdown string.
func SummaryMarkdown(l bookkeeper.Ledger, kind bookkeeper.Kind, s bookkeeper.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %s summary for %s", l.Name(), kind, s.Period))
	doc.PlainText(fmt.Sprintf("Total: %s", Amount(s.Total, l.Currency())))

	if len(s.ByCategory) > 0 {
		rows := make([][]string, 0, len(s.ByCategory))
		for _, cat := range sortedCategories(s.ByCategory) {
			rows = append(rows, []string{cat, Amount(s.ByCategory[cat], l.Currency())})
		}
		doc.H2("By category")
		doc.Table(md.TableSet{
			Header: []string{"Category", "Amount"},
			Rows:   rows,
		})
	}

	return doc.String()
}
