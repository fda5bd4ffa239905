package seeder

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// DataGenerator is the single random source of a run. Every fake value, pick
// and UUID is drawn from the same seeded stream, so a seed reproduces a run.
type DataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewDataGenerator seeds the generator. A zero seed is replaced with the
// current time so the effective seed can still be reported.
func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		faker: gofakeit.New(seed),
		seed:  seed,
	}
}

func (g *DataGenerator) Seed() int64 {
	return g.seed
}

func (g *DataGenerator) UUID() (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(g.faker.Rand)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate id: %w", err)
	}
	return id, nil
}

// IntRange returns a uniform integer in [min, max].
func (g *DataGenerator) IntRange(min, max int) int {
	return g.faker.IntRange(min, max)
}

// Pick returns a uniform index into a pool of size n.
func (g *DataGenerator) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyPool
	}
	return g.faker.Rand.Intn(n), nil
}

func (g *DataGenerator) Email() string {
	return g.faker.Email()
}

func (g *DataGenerator) Password() string {
	return g.faker.Password(true, true, true, true, false, 12)
}

func (g *DataGenerator) FirstName() string {
	return g.faker.FirstName()
}

func (g *DataGenerator) LastName() string {
	return g.faker.LastName()
}

func (g *DataGenerator) Phone() string {
	return g.faker.PhoneFormatted()
}

func (g *DataGenerator) City() string {
	return g.faker.City()
}

func (g *DataGenerator) AvatarURL() string {
	return g.faker.ImageURL(256, 256)
}

func (g *DataGenerator) Company() string {
	return g.faker.Company()
}

func (g *DataGenerator) Text() string {
	return g.faker.Paragraph(1, 3, 10, " ")
}

// CourseName is a job title with apostrophes removed.
func (g *DataGenerator) CourseName() string {
	return strings.ReplaceAll(g.faker.JobTitle(), "'", "")
}

func (g *DataGenerator) Language() string {
	return g.faker.Language()
}

func (g *DataGenerator) Sentence() string {
	return g.faker.Sentence(6)
}

func (g *DataGenerator) URL() string {
	return g.faker.URL()
}

func (g *DataGenerator) Word() string {
	return g.faker.Word()
}

// Options is the fixed three-word distractor list stored on a test.
func (g *DataGenerator) Options() string {
	return strings.Join([]string{g.Word(), g.Word(), g.Word()}, ", ")
}
