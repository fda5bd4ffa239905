package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Sink receives each stage's records once the stage is complete. Calls arrive
// in dependency order: users, schools, courses, lessons, tests.
type Sink interface {
	WriteUsers(users []User) error
	WriteSchools(schools []School) error
	WriteCourses(courses []Course) error
	WriteLessons(lessons []Lesson) error
	WriteTests(tests []Test) error
}

type Seeder struct {
	counts    Counts
	generator *DataGenerator
	quiet     bool
}

type Option func(*Seeder)

// WithSeed makes the run reproducible. Zero keeps the time-based seed.
func WithSeed(seed int64) Option {
	return func(s *Seeder) {
		s.generator = NewDataGenerator(seed)
	}
}

// WithQuiet disables progress output.
func WithQuiet() Option {
	return func(s *Seeder) {
		s.quiet = true
	}
}

func New(counts Counts, opts ...Option) *Seeder {
	s := &Seeder{counts: counts}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = NewDataGenerator(0)
	}
	return s
}

func (s *Seeder) Seed() int64 {
	return s.generator.Seed()
}

// Run generates the dataset stage by stage, handing each stage to sink before
// the next one starts. Any error aborts the run.
func (s *Seeder) Run(ctx context.Context, sink Sink) (*Summary, error) {
	data, err := s.run(ctx, sink)
	if err != nil {
		return nil, err
	}

	s.logf(color.Green, "✅ Generated %d users, %d schools, %d courses, %d lessons, %d tests",
		len(data.Users), len(data.Schools), len(data.Courses), len(data.Lessons), len(data.Tests))

	return &Summary{
		Seed:            s.Seed(),
		Users:           len(data.Users),
		Schools:         len(data.Schools),
		Courses:         len(data.Courses),
		Lessons:         len(data.Lessons),
		PracticeLessons: len(data.PracticeLessons()),
		Tests:           len(data.Tests),
	}, nil
}

// Generate builds the dataset in memory without writing it anywhere.
func (s *Seeder) Generate(ctx context.Context) (*Dataset, error) {
	return s.run(ctx, discard{})
}

func (s *Seeder) run(ctx context.Context, sink Sink) (*Dataset, error) {
	if err := s.counts.Validate(); err != nil {
		return nil, err
	}

	s.logf(color.Cyan, "🌱 Generating dataset (seed %d)...", s.Seed())
	data := &Dataset{}
	g := s.generator
	var err error

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	s.logf(color.Cyan, "  📝 Generating users (%d records)...", s.counts.Users)
	if data.Users, err = generateUsers(g, s.counts.Users); err != nil {
		return nil, fmt.Errorf("generate users: %w", err)
	}
	if err = sink.WriteUsers(data.Users); err != nil {
		return nil, fmt.Errorf("write users: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	s.logf(color.Cyan, "  📝 Generating schools (%d records)...", s.counts.Schools)
	if data.Schools, err = generateSchools(g, s.counts.Schools, data.Users); err != nil {
		return nil, fmt.Errorf("generate schools: %w", err)
	}
	if err = sink.WriteSchools(data.Schools); err != nil {
		return nil, fmt.Errorf("write schools: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	s.logf(color.Cyan, "  📝 Generating courses (%d records)...", s.counts.Courses)
	if data.Courses, err = generateCourses(g, s.counts.Courses, data.Schools); err != nil {
		return nil, fmt.Errorf("generate courses: %w", err)
	}
	if err = sink.WriteCourses(data.Courses); err != nil {
		return nil, fmt.Errorf("write courses: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	s.logf(color.Cyan, "  📝 Generating lessons (budget %d per course)...", s.counts.lessonBudget())
	if data.Lessons, err = generateLessons(g, data.Courses, s.counts.lessonBudget()); err != nil {
		return nil, fmt.Errorf("generate lessons: %w", err)
	}
	if err = sink.WriteLessons(data.Lessons); err != nil {
		return nil, fmt.Errorf("write lessons: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	practice := data.PracticeLessons()
	s.logf(color.Cyan, "  📝 Generating tests (%d per practice lesson, %d practice lessons)...", s.counts.Tests, len(practice))
	if data.Tests, err = generateTests(g, s.counts.Tests, practice); err != nil {
		return nil, fmt.Errorf("generate tests: %w", err)
	}
	if err = sink.WriteTests(data.Tests); err != nil {
		return nil, fmt.Errorf("write tests: %w", err)
	}

	return data, nil
}

func (s *Seeder) logf(print func(format string, a ...interface{}), format string, a ...interface{}) {
	if s.quiet {
		return
	}
	print(format, a...)
}

func generateUsers(g *DataGenerator, count int) ([]User, error) {
	users := make([]User, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.UUID()
		if err != nil {
			return nil, err
		}
		users = append(users, User{
			ID:        id,
			Email:     g.Email(),
			Password:  g.Password(),
			Name:      g.LastName(),
			Surname:   g.FirstName(),
			Phone:     g.Phone(),
			City:      g.City(),
			AvatarURL: g.AvatarURL(),
		})
	}
	return users, nil
}

func generateSchools(g *DataGenerator, count int, users []User) ([]School, error) {
	schools := make([]School, 0, count)
	for i := 0; i < count; i++ {
		owner, err := g.Pick(len(users))
		if err != nil {
			return nil, fmt.Errorf("owner for school %d: %w", i, err)
		}
		id, err := g.UUID()
		if err != nil {
			return nil, err
		}
		schools = append(schools, School{
			ID:          id,
			Name:        g.Company(),
			Description: g.Text(),
			OwnerID:     users[owner].ID,
		})
	}
	return schools, nil
}

func generateCourses(g *DataGenerator, count int, schools []School) ([]Course, error) {
	courses := make([]Course, 0, count)
	for i := 0; i < count; i++ {
		school, err := g.Pick(len(schools))
		if err != nil {
			return nil, fmt.Errorf("school for course %d: %w", i, err)
		}
		status, _ := g.Pick(len(courseStatuses))
		id, err := g.UUID()
		if err != nil {
			return nil, err
		}
		courses = append(courses, Course{
			ID:       id,
			Name:     g.CourseName(),
			SchoolID: schools[school].ID,
			Level:    g.IntRange(minCourseLevel, maxCourseLevel),
			Price:    g.IntRange(minCoursePrice, maxCoursePrice),
			Language: g.Language(),
			Status:   courseStatuses[status],
		})
	}
	return courses, nil
}

// generateLessons gives every course a theory-or-video lesson and a practice
// lesson, then k-2 extra lessons of random type, where k is drawn once per
// course from [2, budget].
func generateLessons(g *DataGenerator, courses []Course, budget int) ([]Lesson, error) {
	var lessons []Lesson
	for _, course := range courses {
		intro := LessonTheory
		if g.IntRange(0, 1) == 1 {
			intro = LessonVideo
		}

		first, err := newLesson(g, course.ID, intro)
		if err != nil {
			return nil, err
		}
		practice, err := newLesson(g, course.ID, LessonPractice)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, first, practice)

		extra := 0
		if budget >= guaranteedLessons {
			extra = g.IntRange(guaranteedLessons, budget) - guaranteedLessons
		}
		for i := 0; i < extra; i++ {
			typ, _ := g.Pick(len(lessonTypes))
			lesson, err := newLesson(g, course.ID, lessonTypes[typ])
			if err != nil {
				return nil, err
			}
			lessons = append(lessons, lesson)
		}
	}
	return lessons, nil
}

func newLesson(g *DataGenerator, courseID uuid.UUID, typ LessonType) (Lesson, error) {
	id, err := g.UUID()
	if err != nil {
		return Lesson{}, err
	}
	lesson := Lesson{
		ID:       id,
		Title:    g.Sentence(),
		Type:     typ,
		Score:    g.IntRange(minScore, maxScore),
		CourseID: courseID,
	}
	switch typ {
	case LessonTheory:
		lesson.TheoryURL = g.URL()
	case LessonVideo:
		lesson.VideoURL = g.URL()
	}
	return lesson, nil
}

func generateTests(g *DataGenerator, perLesson int, practice []Lesson) ([]Test, error) {
	tests := make([]Test, 0, perLesson*len(practice))
	for _, lesson := range practice {
		if lesson.Type != LessonPractice {
			return nil, fmt.Errorf("lesson %s is %s, tests need a practice lesson", lesson.ID, lesson.Type)
		}
		for i := 0; i < perLesson; i++ {
			id, err := g.UUID()
			if err != nil {
				return nil, err
			}
			tests = append(tests, Test{
				ID:       id,
				TaskURL:  g.URL(),
				Options:  g.Options(),
				Answer:   g.Word(),
				Score:    g.IntRange(minScore, maxScore),
				Level:    g.IntRange(minTestLevel, maxTestLevel),
				LessonID: lesson.ID,
			})
		}
	}
	return tests, nil
}

type discard struct{}

func (discard) WriteUsers([]User) error     { return nil }
func (discard) WriteSchools([]School) error { return nil }
func (discard) WriteCourses([]Course) error { return nil }
func (discard) WriteLessons([]Lesson) error { return nil }
func (discard) WriteTests([]Test) error     { return nil }
