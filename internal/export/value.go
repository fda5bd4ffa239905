package export

import (
	"strconv"

	"github.com/google/uuid"
)

// Value is one typed field of a row, encoded to a literal by the dialect.
type Value interface {
	Literal(d Dialect) string
}

type String string

func (s String) Literal(d Dialect) string {
	return d.QuoteString(string(s))
}

type Int int

func (i Int) Literal(Dialect) string {
	return strconv.Itoa(int(i))
}

// UUID is written as a string literal so it loads into uuid, char(36) and
// text columns alike.
type UUID uuid.UUID

func (u UUID) Literal(d Dialect) string {
	return d.QuoteString(uuid.UUID(u).String())
}
