package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func newTable(headers []string, rows [][]string, aligns []columnAlignment) table.Writer {
	columns := len(headers)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw
}

// writeData renders a table on terminals and CSV everywhere else. The title
// is only shown in table form.
func writeData(w io.Writer, title string, headers []string, rows [][]string, aligns []columnAlignment) error {
	if len(headers) == 0 {
		return nil
	}

	tw := newTable(headers, rows, aligns)
	var out string
	if isTerminal(w) {
		if title != "" {
			tw.SetTitle(title)
		}
		out = tw.Render()
	} else {
		out = tw.RenderCSV()
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatHz(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func formatDB(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}
