package export

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

var (
	ErrNoRows   = errors.New("no rows to insert")
	ErrRowWidth = errors.New("row width does not match column list")
)

// BuildInsert renders one multi-row INSERT for table without a trailing
// delimiter. Every value is inlined as a dialect literal; the builder uses
// question placeholders so literal text is never rewritten.
func BuildInsert(d Dialect, table Table, rows [][]Value) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("%s: %w", table.QualifiedName(), ErrNoRows)
	}

	columns := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columns[i] = d.QuoteIdent(col)
	}

	builder := squirrel.Insert(d.QuoteIdent(table.Schema, table.Name)).
		Columns(columns...).
		PlaceholderFormat(squirrel.Question)

	for i, row := range rows {
		if len(row) != len(columns) {
			return "", fmt.Errorf("%w: %s row %d has %d values, want %d",
				ErrRowWidth, table.QualifiedName(), i, len(row), len(columns))
		}
		literals := make([]interface{}, len(row))
		for j, v := range row {
			literals[j] = squirrel.Expr(v.Literal(d))
		}
		builder = builder.Values(literals...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert for %s: %w", table.QualifiedName(), err)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("insert for %s left %d unbound arguments", table.QualifiedName(), len(args))
	}
	return query, nil
}
