package models

import (
	"fmt"
	"strings"
)

// Column describes one column of a table.
type Column struct {
	Name        string
	Type        string
	Constraints []string
}

// Index describes a (non-unique) index on a table.
type Index struct {
	Name    string
	Columns []string
}

// Table is the plain description of a table the store persists to.
type Table struct {
	Name    string
	Columns []Column
	Indexes []Index
}

// Schema is the layout of the database. It is interpreted by the migrations,
// the gorm models only map rows to it.
var Schema = []Table{
	{
		Name: "accounts",
		Columns: append(commonColumns(),
			Column{Name: "name", Type: "TEXT", Constraints: []string{"NOT NULL"}},
			Column{Name: "cap", Type: "TEXT", Constraints: []string{"NOT NULL", "DEFAULT 0"}},
			Column{Name: "tap", Type: "TEXT", Constraints: []string{"NOT NULL", "DEFAULT 0"}},
		),
		Indexes: commonIndexes("accounts"),
	},
	{
		Name: "allocations",
		Columns: append(commonColumns(),
			Column{Name: "income", Type: "TEXT", Constraints: []string{"NOT NULL", "DEFAULT 0"}},
		),
		Indexes: append(commonIndexes("allocations"),
			Index{Name: "idx_allocations_user_id_created_at", Columns: []string{"user_id", "created_at"}},
		),
	},
	{
		Name: "account_allocations",
		Columns: append(commonColumns(),
			Column{Name: "cap", Type: "TEXT", Constraints: []string{"NOT NULL", "DEFAULT 0"}},
			Column{Name: "amount", Type: "TEXT", Constraints: []string{"NOT NULL", "DEFAULT 0"}},
			Column{Name: "account_id", Type: "TEXT", Constraints: []string{"NOT NULL", "REFERENCES accounts(id)"}},
			Column{Name: "allocation_id", Type: "TEXT", Constraints: []string{"NOT NULL", "REFERENCES allocations(id)"}},
		),
		Indexes: append(commonIndexes("account_allocations"),
			Index{Name: "idx_account_allocations_allocation_id", Columns: []string{"allocation_id"}},
			Index{Name: "idx_account_allocations_account_id", Columns: []string{"account_id"}},
		),
	},
}

// commonColumns are the columns every table has. See DefaultModel.
func commonColumns() []Column {
	return []Column{
		{Name: "id", Type: "TEXT", Constraints: []string{"PRIMARY KEY"}},
		{Name: "user_id", Type: "TEXT", Constraints: []string{"NOT NULL"}},
		{Name: "created_at", Type: "DATETIME"},
		{Name: "updated_at", Type: "DATETIME"},
		{Name: "deleted_at", Type: "DATETIME"},
	}
}

func commonIndexes(table string) []Index {
	return []Index{
		{Name: fmt.Sprintf("idx_%s_user_id", table), Columns: []string{"user_id"}},
		{Name: fmt.Sprintf("idx_%s_deleted_at", table), Columns: []string{"deleted_at"}},
	}
}

// TableByName returns the table description with the given name.
func TableByName(name string) (Table, bool) {
	for _, t := range Schema {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// ColumnNames returns the names of all columns in order.
func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// CreateSQL renders the CREATE TABLE statement for the table.
func (t Table) CreateSQL() string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := fmt.Sprintf("`%s` %s", c.Name, c.Type)
		if len(c.Constraints) > 0 {
			def = fmt.Sprintf("%s %s", def, strings.Join(c.Constraints, " "))
		}
		defs = append(defs, def)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` (%s)", t.Name, strings.Join(defs, ", "))
}

// IndexSQL renders one CREATE INDEX statement per index of the table.
func (t Table) IndexSQL() []string {
	statements := make([]string, 0, len(t.Indexes))
	for _, i := range t.Indexes {
		columns := make([]string, 0, len(i.Columns))
		for _, c := range i.Columns {
			columns = append(columns, fmt.Sprintf("`%s`", c))
		}

		statements = append(statements, fmt.Sprintf("CREATE INDEX IF NOT EXISTS `%s` ON `%s` (%s)", i.Name, t.Name, strings.Join(columns, ", ")))
	}
	return statements
}
