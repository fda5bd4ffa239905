package export

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/benchseed/internal/seeder"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sqliteSchema = `
CREATE TABLE public.user (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	name TEXT NOT NULL,
	surname TEXT NOT NULL,
	phone TEXT NOT NULL,
	city TEXT NOT NULL,
	avatar_url TEXT NOT NULL
);
CREATE TABLE public.school (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	owner_id TEXT NOT NULL REFERENCES user(id)
);
CREATE TABLE public.course (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	school_id TEXT NOT NULL REFERENCES school(id),
	level INTEGER NOT NULL,
	price INTEGER NOT NULL,
	language TEXT NOT NULL,
	status TEXT NOT NULL
);
CREATE TABLE public.lesson (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('theory', 'video', 'practice')),
	score INTEGER NOT NULL,
	theory_url TEXT NOT NULL,
	video_url TEXT NOT NULL,
	course_id TEXT NOT NULL REFERENCES course(id)
);
CREATE TABLE public.test (
	id TEXT PRIMARY KEY,
	task_url TEXT NOT NULL,
	options TEXT NOT NULL,
	answer TEXT NOT NULL,
	score INTEGER NOT NULL,
	level INTEGER NOT NULL,
	lesson_id TEXT NOT NULL REFERENCES lesson(id)
);
`

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// ATTACH and foreign_keys are per connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON; ATTACH DATABASE ':memory:' AS public;`)
	require.NoError(t, err)
	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	return db
}

func count(t *testing.T, db *sql.DB, query string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query).Scan(&n))
	return n
}

func TestOutputLoadsIntoSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.sql")
	w, err := Create(path, SQLite{}, "public")
	require.NoError(t, err)

	summary, err := seeder.New(seeder.Counts{Users: 3, Schools: 2, Courses: 2, Lessons: 4, Tests: 1},
		seeder.WithSeed(2024), seeder.WithQuiet()).Run(context.Background(), w)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	script, err := os.ReadFile(path)
	require.NoError(t, err)

	db := openSQLite(t)
	_, err = db.Exec(string(script))
	require.NoError(t, err)

	assert.Equal(t, 3, count(t, db, `SELECT COUNT(*) FROM public.user`))
	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM public.school`))
	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM public.course`))
	assert.Equal(t, summary.Lessons, count(t, db, `SELECT COUNT(*) FROM public.lesson`))
	assert.GreaterOrEqual(t, summary.Lessons, 4)
	assert.Equal(t, summary.PracticeLessons, count(t, db, `SELECT COUNT(*) FROM public.test`))

	assert.Zero(t, count(t, db, `SELECT COUNT(*) FROM public.test t JOIN public.lesson l ON l.id = t.lesson_id WHERE l.type <> 'practice'`))
	assert.Zero(t, count(t, db, `SELECT COUNT(*) FROM public.course c WHERE NOT EXISTS (
		SELECT 1 FROM public.lesson l WHERE l.course_id = c.id AND l.type IN ('theory', 'video'))`))
	assert.Zero(t, count(t, db, `SELECT COUNT(*) FROM public.course c WHERE NOT EXISTS (
		SELECT 1 FROM public.lesson l WHERE l.course_id = c.id AND l.type = 'practice')`))
	assert.Zero(t, count(t, db, `SELECT COUNT(*) FROM public.lesson WHERE
		(type = 'theory' AND (theory_url = '' OR video_url <> '')) OR
		(type = 'video' AND (video_url = '' OR theory_url <> '')) OR
		(type = 'practice' AND (theory_url <> '' OR video_url <> ''))`))
}

func TestLargerOutputLoadsIntoSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.sql")
	w, err := Create(path, SQLite{}, "public")
	require.NoError(t, err)

	summary, err := seeder.New(seeder.Counts{Users: 10, Schools: 5, Courses: 10, Lessons: 60, Tests: 5},
		seeder.WithSeed(77), seeder.WithQuiet()).Run(context.Background(), w)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	script, err := os.ReadFile(path)
	require.NoError(t, err)

	db := openSQLite(t)
	_, err = db.Exec(string(script))
	require.NoError(t, err)

	assert.Equal(t, summary.Tests, count(t, db, `SELECT COUNT(*) FROM public.test`))
	assert.Equal(t, 5*summary.PracticeLessons, summary.Tests)
}
