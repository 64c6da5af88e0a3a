package markdown

import (
	"fmt"

	"github.com/tsawler/quill/document"
	"golang.org/x/sync/errgroup"
)

// tableParallelThreshold is the minimum number of rows before cell
// extraction and row rendering fork. Tables are typically smaller than
// documents, so the threshold is lower.
const tableParallelThreshold = 20

// cellSpan holds the computed merge layout for one grid position.
type cellSpan struct {
	colspan int
	rowspan int
	// skip marks a grid position covered by another cell's merge; it must
	// not be rendered.
	skip bool
}

// cellMeta is the cached merge metadata for one source cell.
type cellMeta struct {
	gridSpan int
	vMerge   document.VMergeState
}

// tableData is the result of the single extraction pass over a table:
// per-row cell texts and merge metadata, indexed [row][cell].
type tableData struct {
	texts [][]string
	meta  [][]cellMeta
}

// rowCount returns the number of extracted rows.
func (d *tableData) rowCount() int { return len(d.texts) }

// extractTableData reads every cell of the table exactly once, caching text
// and merge metadata. Repeated extraction is the dominant cost for large
// tables, so above the row threshold rows are extracted concurrently and
// reassembled in row order.
func extractTableData(t document.Table, useParallel bool) (*tableData, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, fmt.Errorf("reading table rows: %w", err)
	}
	if len(rows) == 0 {
		return &tableData{}, nil
	}

	data := &tableData{
		texts: make([][]string, len(rows)),
		meta:  make([][]cellMeta, len(rows)),
	}

	extractRow := func(i int) error {
		cells, err := rows[i].Cells()
		if err != nil {
			return fmt.Errorf("row %d: reading cells: %w", i, err)
		}
		texts := make([]string, len(cells))
		meta := make([]cellMeta, len(cells))
		for j, cell := range cells {
			text, err := cell.Text()
			if err != nil {
				return fmt.Errorf("row %d cell %d: %w", i, j, err)
			}
			span := cell.GridSpan()
			if span < 1 {
				span = 1
			}
			texts[j] = text
			meta[j] = cellMeta{gridSpan: span, vMerge: cell.VMerge()}
		}
		data.texts[i] = texts
		data.meta[i] = meta
		return nil
	}

	if useParallel && len(rows) > tableParallelThreshold {
		var g errgroup.Group
		g.SetLimit(workerCount(len(rows)))
		for i := range rows {
			i := i
			g.Go(func() error { return extractRow(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return data, nil
	}

	for i := range rows {
		if err := extractRow(i); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// hasMergedCells reports whether any cell spans more than one grid column
// or participates in a vertical merge.
func hasMergedCells(meta [][]cellMeta) bool {
	for _, row := range meta {
		for _, cell := range row {
			if cell.gridSpan > 1 || cell.vMerge != document.VMergeNone {
				return true
			}
		}
	}
	return false
}

// analyzeSpans computes the colspan/rowspan grid for a table from cached
// cell metadata. The result is indexed [row][gridColumn] and every row
// tiles the full grid width: the colspans of non-skip cells plus the count
// of skip positions always sum to the maximum grid width.
//
// Rows whose cells overflow the grid width are truncated silently;
// a "continue" cell with no "restart" above it in the same grid column is
// left alone (rowspan 1, not skipped).
func analyzeSpans(meta [][]cellMeta) [][]cellSpan {
	if len(meta) == 0 {
		return nil
	}

	// First pass: the grid width is the widest row in grid-span terms.
	maxGridCols := 0
	for _, row := range meta {
		cols := 0
		for _, cell := range row {
			cols += cell.gridSpan
		}
		if cols > maxGridCols {
			maxGridCols = cols
		}
	}

	spans := make([][]cellSpan, len(meta))
	for i := range spans {
		spans[i] = make([]cellSpan, maxGridCols)
		for j := range spans[i] {
			spans[i][j] = cellSpan{colspan: 1, rowspan: 1}
		}
	}

	// Second pass: walk each row with a grid-column cursor, assigning
	// colspans and scanning downward from every merge restart.
	for rowIdx, row := range meta {
		gridCol := 0

		for _, cell := range row {
			// Skip positions covered by earlier cells' merges.
			for gridCol < maxGridCols && spans[rowIdx][gridCol].skip {
				gridCol++
			}
			if gridCol >= maxGridCols {
				break
			}

			colspan := cell.gridSpan
			spans[rowIdx][gridCol].colspan = colspan
			for off := 1; off < colspan; off++ {
				if gridCol+off < maxGridCols {
					spans[rowIdx][gridCol+off] = cellSpan{colspan: 1, rowspan: 1, skip: true}
				}
			}

			if cell.vMerge == document.VMergeRestart {
				rowspan := 1
				for next := rowIdx + 1; next < len(meta); next++ {
					if gridCol >= len(meta[next]) {
						break
					}
					if meta[next][gridCol].vMerge != document.VMergeContinue {
						break
					}
					rowspan++
					spans[next][gridCol] = cellSpan{colspan: 1, rowspan: 1, skip: true}
					for off := 1; off < colspan; off++ {
						if gridCol+off < maxGridCols {
							spans[next][gridCol+off] = cellSpan{colspan: 1, rowspan: 1, skip: true}
						}
					}
				}
				spans[rowIdx][gridCol].rowspan = rowspan
			}

			gridCol += colspan
		}
	}

	return spans
}
