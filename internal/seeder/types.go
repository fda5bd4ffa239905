package seeder

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCounts = errors.New("invalid counts")
	ErrEmptyPool     = errors.New("cannot sample a reference from an empty pool")
)

type LessonType string

const (
	LessonTheory   LessonType = "theory"
	LessonVideo    LessonType = "video"
	LessonPractice LessonType = "practice"
)

var (
	lessonTypes    = []LessonType{LessonTheory, LessonVideo, LessonPractice}
	courseStatuses = []string{"draft"}
)

// Value ranges, inclusive on both ends.
const (
	minCourseLevel = 1
	maxCourseLevel = 5
	minCoursePrice = 100
	maxCoursePrice = 1000
	minScore       = 1
	maxScore       = 100
	minTestLevel   = 1
	maxTestLevel   = 5

	// guaranteedLessons is the theory-or-video plus practice pair every course gets.
	guaranteedLessons = 2
)

// Counts are the per-run targets. Lessons is the total lesson budget divided
// across courses; Tests is the number of tests per practice lesson.
type Counts struct {
	Users   int
	Schools int
	Courses int
	Lessons int
	Tests   int
}

func (c Counts) Validate() error {
	if c.Users < 0 || c.Schools < 0 || c.Courses < 0 || c.Lessons < 0 || c.Tests < 0 {
		return fmt.Errorf("%w: counts must be non-negative: %+v", ErrInvalidCounts, c)
	}
	if c.Courses == 0 {
		return fmt.Errorf("%w: courses must be at least 1 to split the lesson budget", ErrInvalidCounts)
	}
	return nil
}

// lessonBudget is the per-course upper bound for the lesson count draw.
func (c Counts) lessonBudget() int {
	return c.Lessons / c.Courses
}

type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	Name      string
	Surname   string
	Phone     string
	City      string
	AvatarURL string
}

type School struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
}

type Course struct {
	ID       uuid.UUID
	Name     string
	SchoolID uuid.UUID
	Level    int
	Price    int
	Language string
	Status   string
}

type Lesson struct {
	ID        uuid.UUID
	Title     string
	Type      LessonType
	Score     int
	TheoryURL string
	VideoURL  string
	CourseID  uuid.UUID
}

type Test struct {
	ID       uuid.UUID
	TaskURL  string
	Options  string
	Answer   string
	Score    int
	Level    int
	LessonID uuid.UUID
}

// Dataset holds every record produced by a run, in generation order.
type Dataset struct {
	Users   []User
	Schools []School
	Courses []Course
	Lessons []Lesson
	Tests   []Test
}

// PracticeLessons returns the lessons tests are generated for.
func (d *Dataset) PracticeLessons() []Lesson {
	var practice []Lesson
	for _, lesson := range d.Lessons {
		if lesson.Type == LessonPractice {
			practice = append(practice, lesson)
		}
	}
	return practice
}

type Summary struct {
	Seed            int64
	Users           int
	Schools         int
	Courses         int
	Lessons         int
	PracticeLessons int
	Tests           int
}
