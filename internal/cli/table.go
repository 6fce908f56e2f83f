package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"EncodingConverter/internal/app"
	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/util"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

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

	return tw.Render()
}

// renderOutcomes renders one row per processed file. Paths are shown
// relative to root when possible.
func renderOutcomes(res app.RunResult) string {
	root := res.Request.RootPath
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	rows := make([][]string, 0, len(res.Outcomes))
	for _, o := range res.Outcomes {
		name := o.Path
		if rel, err := filepath.Rel(root, o.Path); err == nil && rel != "." {
			name = rel
		}

		detected := o.DetectedEncoding
		confidence := ""
		if detected == "" {
			detected = "-"
		} else {
			confidence = strconv.Itoa(o.Confidence)
		}

		size := util.Sizeify(int64(o.BytesIn))
		if o.BytesOut > 0 {
			size = fmt.Sprintf("%s → %s", size, util.Sizeify(int64(o.BytesOut)))
		}

		rows = append(rows, []string{name, o.Status.String(), detected, confidence, size, outcomeNote(o)})
	}

	return renderTable(
		[]string{"File", "Status", "Detected", "Confidence", "Size", "Note"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}

func outcomeNote(o app.ConversionOutcome) string {
	switch {
	case o.Err != nil:
		if kind := errors.KindOf(o.Err); kind != nil {
			return kind.Error()
		}
		return o.Err.Error()
	case o.Warning != nil:
		return errors.ErrDetectionInconclusive.Error()
	default:
		return ""
	}
}
