package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect turns identifiers and strings into SQL text that is safe to embed
// verbatim in a statement.
type Dialect interface {
	Name() string
	// QuoteIdent quotes and dot-joins the non-empty parts of a qualified name.
	QuoteIdent(parts ...string) string
	QuoteString(s string) string
}

func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "postgres", "postgresql", "":
		return Postgres{}, nil
	case "sqlite", "sqlite3":
		return SQLite{}, nil
	case "mysql":
		return MySQL{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) QuoteIdent(parts ...string) string {
	return pgx.Identifier(nonEmpty(parts)).Sanitize()
}

// QuoteString doubles single quotes. Strings containing a backslash are
// emitted as E'' literals with the backslash escaped.
func (Postgres) QuoteString(s string) string {
	return pq.QuoteLiteral(s)
}

type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) QuoteIdent(parts ...string) string {
	return quoteParts(nonEmpty(parts), `"`)
}

func (SQLite) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) QuoteIdent(parts ...string) string {
	return quoteParts(nonEmpty(parts), "`")
}

var mysqlEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`, "\x00", `\0`)

func (MySQL) QuoteString(s string) string {
	return "'" + mysqlEscaper.Replace(s) + "'"
}

func quoteParts(parts []string, quote string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = quote + strings.ReplaceAll(p, quote, quote+quote) + quote
	}
	return strings.Join(quoted, ".")
}
