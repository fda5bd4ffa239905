package export

// Table is a target table and its column list. Column order must match the
// target schema exactly.
type Table struct {
	Schema  string
	Name    string
	Columns []string
}

// QualifiedName is the unquoted schema.name form used in diagnostics.
func (t Table) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

type Catalog struct {
	User   Table
	School Table
	Course Table
	Lesson Table
	Test   Table
}

func NewCatalog(schema string) Catalog {
	return Catalog{
		User: Table{
			Schema:  schema,
			Name:    "user",
			Columns: []string{"id", "email", "password", "name", "surname", "phone", "city", "avatar_url"},
		},
		School: Table{
			Schema:  schema,
			Name:    "school",
			Columns: []string{"id", "name", "description", "owner_id"},
		},
		Course: Table{
			Schema:  schema,
			Name:    "course",
			Columns: []string{"id", "name", "school_id", "level", "price", "language", "status"},
		},
		Lesson: Table{
			Schema:  schema,
			Name:    "lesson",
			Columns: []string{"id", "title", "type", "score", "theory_url", "video_url", "course_id"},
		},
		Test: Table{
			Schema:  schema,
			Name:    "test",
			Columns: []string{"id", "task_url", "options", "answer", "score", "level", "lesson_id"},
		},
	}
}

// Tables lists the catalog in insertion order.
func (c Catalog) Tables() []Table {
	return []Table{c.User, c.School, c.Course, c.Lesson, c.Test}
}
