package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/cache"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/matching"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
)

var errStoreDown = errors.New("connection refused")

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return p.err
}

type failingStudents struct{}

func (failingStudents) Create(context.Context, *models.Student) error { return errStoreDown }
func (failingStudents) GetByID(context.Context, string) (*models.Student, error) {
	return nil, errStoreDown
}
func (failingStudents) GetByEmail(context.Context, string) (*models.Student, error) {
	return nil, errStoreDown
}
func (failingStudents) UpdateProfile(context.Context, *models.Student) error { return errStoreDown }

type failingInternships struct{}

func (failingInternships) List(context.Context) ([]models.Internship, error) {
	return nil, errStoreDown
}
func (failingInternships) GetByID(context.Context, string) (*models.Internship, error) {
	return nil, errStoreDown
}
func (failingInternships) Upsert(context.Context, *models.Internship) error { return errStoreDown }
func (failingInternships) Count(context.Context) (int64, error)             { return 0, errStoreDown }

type failingProjects struct{}

func (failingProjects) List(context.Context) ([]models.Project, error) { return nil, errStoreDown }
func (failingProjects) GetByID(context.Context, string) (*models.Project, error) {
	return nil, errStoreDown
}
func (failingProjects) Create(context.Context, *models.Project) error { return errStoreDown }
func (failingProjects) Count(context.Context) (int64, error)          { return 0, errStoreDown }

type fixture struct {
	store    repositories.Store
	events   *recordingPublisher
	students StudentService
	catalog  CatalogService
	matching MatchingService
}

func newFixture(t *testing.T, store repositories.Store) *fixture {
	t.Helper()
	log := quietLogger()
	pub := &recordingPublisher{}
	students := NewStudentService(store.Students, pub, log)
	catalog := NewCatalogService(CatalogDeps{
		Internships: store.Internships,
		Projects:    store.Projects,
		Cache:       cache.NewMemoryCache(),
		Events:      pub,
		Logger:      log,
	})
	engine := matching.New(matching.DefaultRoles(), matching.NewRandom(1))
	return &fixture{
		store:    store,
		events:   pub,
		students: students,
		catalog:  catalog,
		matching: NewMatchingService(students, catalog, engine, log),
	}
}

func onboardInput(email string, skills ...string) OnboardInput {
	return OnboardInput{Name: "Asha Rao", Email: email, Year: 2, Skills: skills, Interests: []string{"web"}}
}
