package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

func TestValidID(t *testing.T) {
	assert.True(t, validID(uuid.NewString()))
	assert.False(t, validID("unknown"))
	assert.False(t, validID(""))
}

// A nil *gorm.DB would panic if touched, so these pass only when the id
// guard answers before any query is built.
func TestMalformedIDsAreNotFound(t *testing.T) {
	ctx := context.Background()

	_, err := NewStudentRepo(nil).GetByID(ctx, "abc")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	err = NewStudentRepo(nil).UpdateProfile(ctx, &models.Student{ID: "abc"})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = NewInternshipRepo(nil).GetByID(ctx, "unknown")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = NewProjectRepo(nil).GetByID(ctx, "42")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
