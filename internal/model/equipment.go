package model

import "gopkg.in/guregu/null.v3"

const (
	ColUserID      = "userid"
	ColName        = "name"
	ColRarity      = "rarity"
	ColRank        = "rank"
	ColStats       = "stats"
	ColID          = "id"
	ColAttackPower = "attack_power"
	ColLevel       = "level"
	ColFavorite    = "favorite"
	ColEnchanted   = "enchanted"
	ColSeed        = "seed"

	// ColProcessedStats is the default header of the derived label column.
	ColProcessedStats = "processed stats"
)

// EquipmentColumns is the documented column order of an equipment export once
// the compound index has been folded back into regular columns.
var EquipmentColumns = []string{
	ColUserID,
	ColName,
	ColRarity,
	ColRank,
	ColStats,
	ColID,
	ColAttackPower,
	ColLevel,
	ColFavorite,
	ColEnchanted,
	ColSeed,
}

// Equipment is one row of an equipment export. Cells are kept as text so that
// values are written back exactly as they were read; an invalid null.String
// marks an absent cell.
type Equipment struct {
	UserID      null.String
	Name        null.String
	Rarity      null.String
	Rank        null.String
	Stats       null.String
	ID          null.String
	AttackPower null.String
	Level       null.String
	Favorite    null.String
	Enchanted   null.String
	Seed        null.String

	// Record holds every cell of the row in EquipmentTable.Columns order,
	// including columns that are not documented.
	Record []null.String

	ProcessedStats string
}

// Documented returns the documented columns of the record in
// EquipmentColumns order.
func (e *Equipment) Documented() []null.String {
	return []null.String{
		e.UserID,
		e.Name,
		e.Rarity,
		e.Rank,
		e.Stats,
		e.ID,
		e.AttackPower,
		e.Level,
		e.Favorite,
		e.Enchanted,
		e.Seed,
	}
}

// Cells returns the full record followed by the processed stats label.
func (e *Equipment) Cells() []null.String {
	cells := make([]null.String, 0, len(e.Record)+1)
	cells = append(cells, e.Record...)
	return append(cells, null.StringFrom(e.ProcessedStats))
}

// Field returns a pointer to the cell for a documented column name, or nil
// when the column is unknown.
func (e *Equipment) Field(column string) *null.String {
	switch column {
	case ColUserID:
		return &e.UserID
	case ColName:
		return &e.Name
	case ColRarity:
		return &e.Rarity
	case ColRank:
		return &e.Rank
	case ColStats:
		return &e.Stats
	case ColID:
		return &e.ID
	case ColAttackPower:
		return &e.AttackPower
	case ColLevel:
		return &e.Level
	case ColFavorite:
		return &e.Favorite
	case ColEnchanted:
		return &e.Enchanted
	case ColSeed:
		return &e.Seed
	default:
		return nil
	}
}

// EquipmentTable is a loaded equipment file. Columns names the cells of every
// row's Record in input order; the shifted export's header is already folded
// back into EquipmentColumns.
type EquipmentTable struct {
	Columns []string
	Rows    []*Equipment
}

// NewEquipmentTable builds a table over the documented columns, filling the
// Record of every row that has none.
func NewEquipmentTable(rows []*Equipment) *EquipmentTable {
	for _, row := range rows {
		if row.Record == nil {
			row.Record = row.Documented()
		}
	}
	return &EquipmentTable{
		Columns: EquipmentColumns,
		Rows:    rows,
	}
}

// FullColumns returns the header of the full export: every column of the
// table followed by the label column.
func (t *EquipmentTable) FullColumns(labelHeader string) []string {
	cols := make([]string, 0, len(t.Columns)+1)
	cols = append(cols, t.Columns...)
	return append(cols, labelHeader)
}

// EquipmentMinimal is the reduced projection of an Equipment row. Field names
// match Equipment so the projection can be copied field by field.
type EquipmentMinimal struct {
	Rarity         null.String
	Rank           null.String
	Name           null.String
	Stats          null.String
	ProcessedStats string
	ID             null.String
}

func (e *EquipmentMinimal) Cells() []null.String {
	return []null.String{
		e.Rarity,
		e.Rank,
		e.Name,
		e.Stats,
		null.StringFrom(e.ProcessedStats),
		e.ID,
	}
}

// MinimalColumns returns the header of the minimal projection with the given
// label column name.
func MinimalColumns(labelHeader string) []string {
	return []string{ColRarity, ColRank, ColName, ColStats, labelHeader, ColID}
}

// ProfileSummary is the label histogram of an equipment file.
type ProfileSummary struct {
	Source   string          `json:"source"`
	Total    int             `json:"total"`
	Absent   int             `json:"absent"`
	Profiles []*ProfileCount `json:"profiles"`
}

type ProfileCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
