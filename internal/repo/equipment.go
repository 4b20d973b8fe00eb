package repo

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/equipsorter/internal/model"
	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/pkg/flog"
)

// Layout describes how the columns of an equipment file map onto
// model.EquipmentColumns.
type Layout int

const (
	// LayoutShifted is an export whose header row is two fields shorter than
	// its data rows. Fields are mapped positionally.
	LayoutShifted Layout = iota + 1
	// LayoutNamed is a file whose header names the documented columns.
	LayoutNamed
	// LayoutPositional takes stats from an explicit column index and every
	// other documented column by header name.
	LayoutPositional
)

// shiftedIndexWidth is the number of leading index fields the shifted layout
// carries without a header.
const shiftedIndexWidth = 2

const utf8BOM = "\ufeff"

func (l Layout) String() string {
	switch l {
	case LayoutShifted:
		return "shifted"
	case LayoutNamed:
		return "named"
	case LayoutPositional:
		return "positional"
	default:
		return "unknown"
	}
}

type LoadOptions struct {
	// StatsColumn selects LayoutPositional with stats at this zero-based
	// index. A negative value detects the layout from the file.
	StatsColumn int
}

type Equipment struct{}

func NewEquipment() *Equipment {
	return &Equipment{}
}

func (r *Equipment) Load(ctx context.Context, path string, opts LoadOptions) (*model.EquipmentTable, Layout, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, apperr.ErrNotFound.Msg("input file %q does not exist", path)
	} else if err != nil {
		return nil, 0, errors.Wrap(err, "failed to open input file")
	}
	defer f.Close()

	table, layout, err := r.Decode(ctx, f, opts)
	if err != nil {
		return nil, 0, err
	}

	flog.DebugFrom(ctx).
		Str("evt.name", "repo.equipment.load").
		Str("path", path).
		Str("layout", layout.String()).
		Int("columns", len(table.Columns)).
		Int("rows", len(table.Rows)).
		Msg("loaded equipment file")

	return table, layout, nil
}

func (r *Equipment) Decode(ctx context.Context, rd io.Reader, opts LoadOptions) (*model.EquipmentTable, Layout, error) {
	reader := csv.NewReader(rd)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, apperr.ErrInvalidInput.Msg("malformed csv: %s", err)
	}
	if len(records) == 0 {
		return nil, 0, apperr.ErrInvalidInput.Msg("file has no header row")
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	data := records[1:]

	layout, columns, err := detectLayout(header, data, opts)
	if err != nil {
		return nil, 0, err
	}

	positions := make(map[string]int, len(model.EquipmentColumns))
	for _, column := range model.EquipmentColumns {
		if i := indexOf(columns, column); i >= 0 {
			positions[column] = i
		}
	}

	table := &model.EquipmentTable{
		Columns: columns,
		Rows:    make([]*model.Equipment, 0, len(data)),
	}
	for _, record := range data {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		row := &model.Equipment{Record: make([]null.String, len(columns))}
		for i := range columns {
			row.Record[i] = cell(record, i)
		}
		for column, i := range positions {
			*row.Field(column) = row.Record[i]
		}
		if layout == LayoutPositional {
			row.Stats = row.Record[opts.StatsColumn]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, layout, nil
}

// detectLayout picks the layout of a file and returns the names of its
// columns in input order.
func detectLayout(header []string, data [][]string, opts LoadOptions) (Layout, []string, error) {
	if opts.StatsColumn >= 0 {
		if opts.StatsColumn >= len(header) {
			return 0, nil, apperr.ErrInvalidInput.Msg("stats column %d is out of range: header has %d columns", opts.StatsColumn, len(header))
		}
		return LayoutPositional, header, nil
	}

	if len(data) > 0 && len(data[0]) == len(header)+shiftedIndexWidth {
		return LayoutShifted, shiftedColumns(header), nil
	}

	if indexOf(header, model.ColStats) >= 0 {
		return LayoutNamed, header, nil
	}

	return 0, nil, apperr.ErrInvalidInput.Msg("no %q column found in header and rows are not in the shifted export layout", model.ColStats)
}

// shiftedColumns names the fields of a shifted export. The leading fields
// take the documented names; fields past them keep the header name that
// sits shiftedIndexWidth positions earlier.
func shiftedColumns(header []string) []string {
	width := len(header) + shiftedIndexWidth
	columns := make([]string, width)
	for i := range columns {
		if i < len(model.EquipmentColumns) {
			columns[i] = model.EquipmentColumns[i]
		} else {
			columns[i] = header[i-shiftedIndexWidth]
		}
	}
	return columns
}

// naValues are the cell texts read as absent, alongside the empty cell.
var naValues = map[string]struct{}{
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// cell returns the field at i; missing, empty and NA fields are absent.
func cell(record []string, i int) null.String {
	if i >= len(record) || record[i] == "" {
		return null.String{}
	}
	if _, ok := naValues[record[i]]; ok {
		return null.String{}
	}
	return null.StringFrom(record[i])
}

func indexOf(header []string, column string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			return i
		}
	}
	return -1
}

// StoreFull writes every column of the table plus the label column.
func (r *Equipment) StoreFull(ctx context.Context, path string, labelHeader string, table *model.EquipmentTable) error {
	rows := table.Rows
	return r.store(ctx, path, table.FullColumns(labelHeader), len(rows), func(i int) ([]null.String, error) {
		return rows[i].Cells(), nil
	})
}

// StoreMinimal writes the reduced projection of each row.
func (r *Equipment) StoreMinimal(ctx context.Context, path string, labelHeader string, table *model.EquipmentTable) error {
	rows := table.Rows
	return r.store(ctx, path, model.MinimalColumns(labelHeader), len(rows), func(i int) ([]null.String, error) {
		var minimal model.EquipmentMinimal
		if err := copier.Copy(&minimal, rows[i]); err != nil {
			return nil, errors.Wrap(err, "failed to project row")
		}
		return minimal.Cells(), nil
	})
}

func (r *Equipment) store(ctx context.Context, path string, header []string, n int, cellsFn func(i int) ([]null.String, error)) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if errors.Is(err, os.ErrNotExist) {
		return apperr.ErrNotFound.Msg("output folder for %q does not exist", path)
	} else if err != nil {
		return errors.Wrap(err, "failed to open output file")
	}
	defer file.Close()

	if err := r.Encode(file, header, n, cellsFn); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return errors.Wrap(err, "failed to close output file")
	}

	flog.DebugFrom(ctx).
		Str("evt.name", "repo.equipment.store").
		Str("path", path).
		Int("rows", n).
		Msg("stored equipment file")

	return nil
}

func (r *Equipment) Encode(w io.Writer, header []string, n int, cellsFn func(i int) ([]null.String, error)) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	record := make([]string, len(header))
	for i := 0; i < n; i++ {
		cells, err := cellsFn(i)
		if err != nil {
			return err
		}
		for j := range record {
			record[j] = ""
			if j < len(cells) {
				record[j] = cells[j].String
			}
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush csv writer")
}
