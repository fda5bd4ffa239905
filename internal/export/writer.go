package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Rana718/benchseed/internal/seeder"
)

// SQLWriter is a seeder.Sink that renders every stage as one INSERT
// statement terminated by ";" and a blank line.
type SQLWriter struct {
	dialect Dialect
	catalog Catalog
	w       *bufio.Writer
	closer  io.Closer
	rows    map[string]int
}

var _ seeder.Sink = (*SQLWriter)(nil)

func NewSQLWriter(w io.Writer, d Dialect, schema string) *SQLWriter {
	return &SQLWriter{
		dialect: d,
		catalog: NewCatalog(schema),
		w:       bufio.NewWriter(w),
		rows:    make(map[string]int),
	}
}

// Create truncates or creates path and returns a writer owning the file.
func Create(path string, d Dialect, schema string) (*SQLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	sw := NewSQLWriter(f, d, schema)
	sw.closer = f
	return sw, nil
}

// Close flushes buffered output and closes the file opened by Create.
func (s *SQLWriter) Close() error {
	flushErr := s.w.Flush()
	if s.closer != nil {
		if err := s.closer.Close(); err != nil && flushErr == nil {
			return fmt.Errorf("failed to close output: %w", err)
		}
	}
	if flushErr != nil {
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	return nil
}

// Rows returns the number of rows written per qualified table name.
func (s *SQLWriter) Rows() map[string]int {
	out := make(map[string]int, len(s.rows))
	for k, v := range s.rows {
		out[k] = v
	}
	return out
}

func (s *SQLWriter) Catalog() Catalog {
	return s.catalog
}

func (s *SQLWriter) WriteUsers(users []seeder.User) error {
	rows := make([][]Value, len(users))
	for i, u := range users {
		rows[i] = []Value{
			UUID(u.ID), String(u.Email), String(u.Password), String(u.Name),
			String(u.Surname), String(u.Phone), String(u.City), String(u.AvatarURL),
		}
	}
	return s.writeStatement(s.catalog.User, rows)
}

func (s *SQLWriter) WriteSchools(schools []seeder.School) error {
	rows := make([][]Value, len(schools))
	for i, sc := range schools {
		rows[i] = []Value{UUID(sc.ID), String(sc.Name), String(sc.Description), UUID(sc.OwnerID)}
	}
	return s.writeStatement(s.catalog.School, rows)
}

func (s *SQLWriter) WriteCourses(courses []seeder.Course) error {
	rows := make([][]Value, len(courses))
	for i, c := range courses {
		rows[i] = []Value{
			UUID(c.ID), String(c.Name), UUID(c.SchoolID), Int(c.Level),
			Int(c.Price), String(c.Language), String(c.Status),
		}
	}
	return s.writeStatement(s.catalog.Course, rows)
}

func (s *SQLWriter) WriteLessons(lessons []seeder.Lesson) error {
	rows := make([][]Value, len(lessons))
	for i, l := range lessons {
		rows[i] = []Value{
			UUID(l.ID), String(l.Title), String(l.Type), Int(l.Score),
			String(l.TheoryURL), String(l.VideoURL), UUID(l.CourseID),
		}
	}
	return s.writeStatement(s.catalog.Lesson, rows)
}

func (s *SQLWriter) WriteTests(tests []seeder.Test) error {
	rows := make([][]Value, len(tests))
	for i, t := range tests {
		rows[i] = []Value{
			UUID(t.ID), String(t.TaskURL), String(t.Options), String(t.Answer),
			Int(t.Score), Int(t.Level), UUID(t.LessonID),
		}
	}
	return s.writeStatement(s.catalog.Test, rows)
}

func (s *SQLWriter) writeStatement(table Table, rows [][]Value) error {
	s.rows[table.QualifiedName()] = len(rows)

	// An empty VALUES list is not valid SQL.
	if len(rows) == 0 {
		_, err := fmt.Fprintf(s.w, "-- %s: no rows\n\n", table.QualifiedName())
		return err
	}

	query, err := BuildInsert(s.dialect, table, rows)
	if err != nil {
		return err
	}
	if _, err := s.w.WriteString(query); err != nil {
		return err
	}
	_, err = s.w.WriteString(";\n\n")
	return err
}
