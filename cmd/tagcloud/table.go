package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tagcloud/internal/cloud"
)

// selectionTable renders the selected words with their counts and font
// levels, in display order.
func selectionTable(ordered []cloud.WordCount, fonts map[string]int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Word", "Count", "Font"})

	for _, entry := range ordered {
		tw.AppendRow(table.Row{
			entry.Word,
			strconv.Itoa(entry.Count),
			"f" + strconv.Itoa(fonts[entry.Word]),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
