package cvgen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

type countingGenerator struct {
	calls int
	err   error
}

func (g *countingGenerator) Draft(ctx context.Context, in Input) (Draft, error) {
	g.calls++
	if g.err != nil {
		return Draft{}, g.err
	}
	return HeuristicGenerator{}.Draft(ctx, in)
}

type recordingWaiter struct {
	calls int
	err   error
}

func (w *recordingWaiter) Wait(ctx context.Context) error {
	w.calls++
	return w.err
}

func newTestService() (*Service, *countingGenerator, *recordingWaiter) {
	gen := &countingGenerator{}
	waiter := &recordingWaiter{}
	return &Service{
		Generator:   gen,
		Waiter:      waiter,
		ParseWaiter: &recordingWaiter{},
		Now:         func() time.Time { return fixedNow },
	}, gen, waiter
}

func validInput() Input {
	return Input{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+44 20 0000 0000",
		Location:   "London",
		Experience: "Built systems.\nLed team.\nShipped v1.\nExtra line.",
		Education:  "Some university, maths",
		Skills:     "Go, Python ,  Rust,",
	}
}

func TestGenerateRejectsMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{name: "empty full name", in: Input{Email: "a@b.c"}},
		{name: "empty email", in: Input{FullName: "A"}},
		{name: "both missing", in: Input{Experience: "text"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gen, waiter := newTestService()

			record, err := svc.Generate(context.Background(), tt.in)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, CVRecord{}, record)
			assert.Zero(t, gen.calls)
			assert.Zero(t, waiter.calls)
		})
	}
}

func TestGenerateAcceptsWhitespaceOnlyRequiredFields(t *testing.T) {
	svc, gen, waiter := newTestService()

	record, err := svc.Generate(context.Background(), Input{FullName: " ", Email: "\t"})

	require.NoError(t, err)
	assert.Equal(t, " ", record.PersonalInfo.FullName)
	assert.Equal(t, "\t", record.PersonalInfo.Email)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, waiter.calls)
}

func TestGenerateAchievementsAreFirstThreeNonBlankLines(t *testing.T) {
	svc, _, _ := newTestService()

	record, err := svc.Generate(context.Background(), validInput())

	require.NoError(t, err)
	require.Len(t, record.Experience, 1)
	assert.Equal(t, []string{"Built systems.", "Led team.", "Shipped v1."}, record.Experience[0].Achievements)
}

func TestGenerateAchievementsSkipBlankLines(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.Experience = "\n  \nFirst\r\n\n\tSecond\n   \nThird\nFourth"

	record, err := svc.Generate(context.Background(), in)

	require.NoError(t, err)
	require.Len(t, record.Experience, 1)
	assert.Equal(t, []string{"First", "\tSecond", "Third"}, record.Experience[0].Achievements)
}

func TestGenerateExperiencePlaceholderFields(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.Experience = strings.Repeat("é", 250)

	record, err := svc.Generate(context.Background(), in)

	require.NoError(t, err)
	require.Len(t, record.Experience, 1)
	exp := record.Experience[0]
	assert.Equal(t, "exp1", exp.ID)
	assert.Equal(t, "Example Company", exp.Company)
	assert.Equal(t, "Software Engineer", exp.Position)
	assert.Equal(t, "Remote", exp.Location)
	assert.True(t, exp.Current)
	assert.Nil(t, exp.EndDate)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), exp.StartDate)
	assert.Equal(t, strings.Repeat("é", 200), exp.Description)
}

func TestGenerateShortExperienceKeepsFullDescription(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.Experience = "Short."

	record, err := svc.Generate(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Short.", record.Experience[0].Description)
}

func TestGenerateSkillsTrimmedAndOrdered(t *testing.T) {
	svc, _, _ := newTestService()

	record, err := svc.Generate(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python", "Rust"}, record.Skills)
}

func TestGenerateSkillsKeepDuplicates(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.Skills = "Go,go, Go ,,"

	record, err := svc.Generate(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "go", "Go"}, record.Skills)
}

func TestGenerateEmptySectionsStayEmpty(t *testing.T) {
	svc, _, _ := newTestService()

	record, err := svc.Generate(context.Background(), Input{FullName: "A", Email: "a@b.c"})

	require.NoError(t, err)
	assert.NotNil(t, record.Experience)
	assert.Empty(t, record.Experience)
	assert.NotNil(t, record.Education)
	assert.Empty(t, record.Education)
	assert.NotNil(t, record.Skills)
	assert.Empty(t, record.Skills)
}

func TestGenerateEducationIgnoresTextContent(t *testing.T) {
	svc, _, _ := newTestService()
	a, b := validInput(), validInput()
	a.Education = "MIT, PhD Physics"
	b.Education = "x"

	ra, err := svc.Generate(context.Background(), a)
	require.NoError(t, err)
	rb, err := svc.Generate(context.Background(), b)
	require.NoError(t, err)

	require.Len(t, ra.Education, 1)
	assert.Equal(t, ra.Education, rb.Education)
	edu := ra.Education[0]
	assert.Equal(t, "edu1", edu.ID)
	assert.Equal(t, "University", edu.Institution)
	assert.Equal(t, "Bachelor of Science", edu.Degree)
	assert.Equal(t, "Computer Science", edu.Field)
	assert.Equal(t, "USA", edu.Location)
	assert.Equal(t, time.Date(2015, time.September, 1, 0, 0, 0, 0, time.UTC), edu.StartDate)
	require.NotNil(t, edu.EndDate)
	assert.Equal(t, time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC), *edu.EndDate)
	assert.Nil(t, edu.GPA)
}

func TestGenerateAssemblesRecord(t *testing.T) {
	svc, _, waiter := newTestService()

	record, err := svc.Generate(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "generated-1709634600000", record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, fixedNow, record.CreatedAt)
	assert.Equal(t, fixedNow, record.UpdatedAt)
	assert.Equal(t, []Language{{Name: "English", Proficiency: ProficiencyNative}}, record.Languages)
	assert.NotNil(t, record.Certifications)
	assert.Empty(t, record.Certifications)
	assert.Equal(t, PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+44 20 0000 0000",
		Location: "London",
		Summary:  "Professional with strong background in the industry.",
	}, record.PersonalInfo)
	assert.Equal(t, 1, waiter.calls)
}

func TestGenerateKeepsProvidedSummary(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.Summary = "Backend engineer."

	record, err := svc.Generate(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Backend engineer.", record.PersonalInfo.Summary)
}

func TestGenerateIsIdempotentApartFromIdentity(t *testing.T) {
	svc, _, _ := newTestService()
	tick := fixedNow
	svc.Now = func() time.Time {
		tick = tick.Add(1500 * time.Millisecond)
		return tick
	}

	first, err := svc.Generate(context.Background(), validInput())
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.CreatedAt, second.CreatedAt)

	for _, r := range []*CVRecord{&first, &second} {
		r.ID = ""
		r.CreatedAt = time.Time{}
		r.UpdatedAt = time.Time{}
	}
	assert.Equal(t, first, second)
}

func TestGenerateGeneratorFailure(t *testing.T) {
	svc, gen, waiter := newTestService()
	boom := errors.New("provider down")
	gen.err = boom

	_, err := svc.Generate(context.Background(), validInput())

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, waiter.calls)
}

func TestGenerateWaitFailure(t *testing.T) {
	svc, _, waiter := newTestService()
	waiter.err = context.DeadlineExceeded

	record, err := svc.Generate(context.Background(), validInput())

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, CVRecord{}, record)
}

func TestParse(t *testing.T) {
	svc, _, _ := newTestService()
	text := "Jane Smith\nSenior Engineer\nLed migrations\nMentored juniors"

	parsed, err := svc.Parse(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, text, parsed.RawText)
	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, []string{"Jane Smith", "Senior Engineer", "Led migrations"}, parsed.Experience[0].Achievements)
	assert.Len(t, parsed.Education, 1)
	assert.NotNil(t, parsed.Skills)
	assert.Empty(t, parsed.Skills)
}

func TestParseEmptyText(t *testing.T) {
	svc, gen, _ := newTestService()

	_, err := svc.Parse(context.Background(), " \n\t")

	require.ErrorIs(t, err, ErrEmptyDocument)
	assert.Zero(t, gen.calls)
}

func TestFixedDelay(t *testing.T) {
	require.NoError(t, FixedDelay(0).Wait(context.Background()))
	require.NoError(t, FixedDelay(time.Millisecond).Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := FixedDelay(time.Hour).Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
