package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/events"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

type OnboardInput struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Year      int      `json:"year" validate:"required,min=1,max=4"`
	Skills    []string `json:"skills" validate:"omitempty,dive,required"`
	Interests []string `json:"interests" validate:"omitempty,dive,required"`
}

// UpdateInput replaces whichever arrays are present. A nil field leaves the
// stored value alone; an empty array clears it.
type UpdateInput struct {
	Skills    *[]string `json:"skills" validate:"omitempty,dive,required"`
	Interests *[]string `json:"interests" validate:"omitempty,dive,required"`
}

type StudentService interface {
	Onboard(ctx context.Context, in OnboardInput) (*models.Student, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Update(ctx context.Context, id string, in UpdateInput) (*models.Student, error)
}

type studentService struct {
	students repositories.StudentRepository
	events   events.Publisher
	log      *logrus.Logger
}

func NewStudentService(students repositories.StudentRepository, pub events.Publisher, log *logrus.Logger) StudentService {
	if pub == nil {
		pub = events.Noop()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &studentService{students: students, events: pub, log: log}
}

func (s *studentService) Onboard(ctx context.Context, in OnboardInput) (*models.Student, error) {
	const op = "StudentService.Onboard"

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateStruct(op, in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	st := &models.Student{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Year:      in.Year,
		Skills:    orEmpty(in.Skills),
		Interests: orEmpty(in.Interests),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.students.Create(ctx, st); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "a student with this email already exists", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to save student", err)
	}

	s.publish(ctx, op, events.TopicStudentOnboarded, st)
	return st, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*models.Student, error) {
	const op = "StudentService.Get"

	if strings.TrimSpace(id) == "" {
		return nil, utils.Invalid(op, "student id is required", map[string]string{"id": "is required"})
	}
	st, err := s.students.GetByID(ctx, id)
	return st, lookupErr(op, err)
}

func (s *studentService) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	const op = "StudentService.GetByEmail"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, utils.Invalid(op, "email is required", map[string]string{"email": "is required"})
	}
	st, err := s.students.GetByEmail(ctx, email)
	return st, lookupErr(op, err)
}

func (s *studentService) Update(ctx context.Context, id string, in UpdateInput) (*models.Student, error) {
	const op = "StudentService.Update"

	if in.Skills == nil && in.Interests == nil {
		return nil, utils.Invalid(op, "nothing to update", map[string]string{
			"skills":    "skills or interests is required",
			"interests": "skills or interests is required",
		})
	}
	if err := validateStruct(op, in); err != nil {
		return nil, err
	}

	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Skills != nil {
		st.Skills = orEmpty(*in.Skills)
	}
	if in.Interests != nil {
		st.Interests = orEmpty(*in.Interests)
	}
	st.UpdatedAt = time.Now().UTC()

	if err := s.students.UpdateProfile(ctx, st); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "student not found", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to update student", err)
	}

	s.publish(ctx, op, events.TopicStudentUpdated, st)
	return st, nil
}

func (s *studentService) publish(ctx context.Context, op, topic string, payload any) {
	if err := s.events.Publish(ctx, topic, payload); err != nil {
		s.log.WithFields(logrus.Fields{"op": op, "topic": topic}).WithError(err).Warn("event publish failed")
	}
}

func lookupErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrNotFound):
		return utils.E(utils.CodeNotFound, op, "student not found", err)
	default:
		return utils.E(utils.CodeUnavailable, op, "failed to load student", err)
	}
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
