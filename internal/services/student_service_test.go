package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/events"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories/memory"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

func TestOnboard(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()

	st, err := f.students.Onboard(ctx, onboardInput(" Asha@Example.com ", "React"))
	require.NoError(t, err)
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, "asha@example.com", st.Email)
	assert.Equal(t, []string{"React"}, []string(st.Skills))
	assert.Equal(t, []string{events.TopicStudentOnboarded}, f.events.topics)

	got, err := f.students.GetByEmail(ctx, "ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)
}

func TestOnboard_DuplicateEmailConflicts(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()

	_, err := f.students.Onboard(ctx, onboardInput("a@example.com"))
	require.NoError(t, err)
	_, err = f.students.Onboard(ctx, onboardInput("a@example.com"))
	assert.True(t, utils.IsCode(err, utils.CodeConflict), err)
}

func TestOnboard_InvalidInputEnumeratesFields(t *testing.T) {
	f := newFixture(t, memory.NewStore())

	_, err := f.students.Onboard(context.Background(), OnboardInput{
		Name:   "  ",
		Email:  "not-an-email",
		Year:   7,
		Skills: []string{"Go", ""},
	})

	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument), err)
	fields := utils.FieldsOf(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Equal(t, "must be at most 4", fields["year"])
	assert.Contains(t, fields, "skills[1]")
	assert.Empty(t, f.events.topics)
}

func TestOnboard_StoreDownIsUnavailable(t *testing.T) {
	store := memory.NewStore()
	store.Students = failingStudents{}
	f := newFixture(t, store)

	_, err := f.students.Onboard(context.Background(), onboardInput("a@example.com"))
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable), err)
	assert.Equal(t, 503, utils.HTTPStatus(err))
}

func TestOnboard_PublishFailureIsSwallowed(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	f.events.err = assert.AnError
	f.students = NewStudentService(f.store.Students, f.events, quietLogger())

	_, err := f.students.Onboard(context.Background(), onboardInput("a@example.com"))
	assert.NoError(t, err)
}

func TestUpdate_ReplacesArrays(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()
	st, err := f.students.Onboard(ctx, onboardInput("a@example.com", "React", "CSS"))
	require.NoError(t, err)

	skills := []string{"Go"}
	updated, err := f.students.Update(ctx, st.ID, UpdateInput{Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, []string(updated.Skills))
	assert.Equal(t, []string{"web"}, []string(updated.Interests))

	none := []string{}
	_, err = f.students.Update(ctx, st.ID, UpdateInput{Interests: &none})
	require.NoError(t, err)

	got, err := f.students.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, []string(got.Skills))
	assert.Empty(t, got.Interests)
	assert.Equal(t, []string{events.TopicStudentOnboarded, events.TopicStudentUpdated, events.TopicStudentUpdated}, f.events.topics)
}

func TestUpdate_Errors(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()
	skills := []string{"Go"}

	_, err := f.students.Update(ctx, "missing", UpdateInput{Skills: &skills})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound), err)

	_, err = f.students.Update(ctx, "missing", UpdateInput{})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), err)

	f = newFixture(t, repositories.Store{Students: failingStudents{}, Internships: memory.NewInternshipRepo(), Projects: memory.NewProjectRepo()})
	_, err = f.students.Update(ctx, "any", UpdateInput{Skills: &skills})
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable), err)
}
