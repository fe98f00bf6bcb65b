package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard/internal/models"
	"jobboard/internal/repository"
)

type mockJobRepo struct {
	jobs     map[string]*models.Job
	getCalls int
}

func (m *mockJobRepo) Create(ctx context.Context, job *models.Job) error { return nil }

func (m *mockJobRepo) GetByID(ctx context.Context, id bson.ObjectID) (*models.Job, error) {
	m.getCalls++
	j, ok := m.jobs[id.Hex()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) Update(ctx context.Context, id bson.ObjectID, req *models.JobRequest) error {
	return nil
}

func (m *mockJobRepo) Delete(ctx context.Context, id bson.ObjectID) error { return nil }

func (m *mockJobRepo) List(ctx context.Context, f repository.JobFilter) ([]models.JobSummary, int64, error) {
	return nil, 0, nil
}

func injectUser(u *models.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func ownershipRouter(repo *mockJobRepo, caller *models.User, next http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()
	r.With(injectUser(caller), RequireObjectID, JobOwnership(repo)).Delete("/job/{id}", next)
	return r
}

func TestJobOwnershipMissingJob(t *testing.T) {
	repo := &mockJobRepo{jobs: map[string]*models.Job{}}
	caller := &models.User{ID: bson.NewObjectID(), Role: models.RoleRecruiter}
	r := ownershipRouter(repo, caller, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodDelete, "/job/"+bson.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestJobOwnershipForbidsNonOwner(t *testing.T) {
	owner := bson.NewObjectID()
	job := &models.Job{ID: bson.NewObjectID(), UserID: owner}
	repo := &mockJobRepo{jobs: map[string]*models.Job{job.ID.Hex(): job}}
	caller := &models.User{ID: bson.NewObjectID(), Role: models.RoleRecruiter}
	r := ownershipRouter(repo, caller, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodDelete, "/job/"+job.ID.Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestJobOwnershipPassesOwnerWithoutRefetch(t *testing.T) {
	owner := bson.NewObjectID()
	job := &models.Job{ID: bson.NewObjectID(), UserID: owner}
	repo := &mockJobRepo{jobs: map[string]*models.Job{job.ID.Hex(): job}}
	caller := &models.User{ID: owner, Role: models.RoleRecruiter}

	r := ownershipRouter(repo, caller, func(w http.ResponseWriter, r *http.Request) {
		got, ok := JobFromContext(r.Context())
		if !ok || got != job {
			t.Fatalf("expected resolved job in context, got %v ok=%v", got, ok)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/job/"+job.ID.Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected exactly one lookup, got %d", repo.getCalls)
	}
}

func TestJobOwnershipCanonicalIDComparison(t *testing.T) {
	// The same id decoded from differently-cased hex must compare equal.
	hexID := bson.NewObjectID().Hex()
	ownerFromUpper, err := bson.ObjectIDFromHex(strings.ToUpper(hexID))
	if err != nil {
		t.Fatalf("ObjectIDFromHex: %v", err)
	}
	job := &models.Job{ID: bson.NewObjectID(), UserID: ownerFromUpper}
	repo := &mockJobRepo{jobs: map[string]*models.Job{job.ID.Hex(): job}}

	ownerFromLower, err := bson.ObjectIDFromHex(hexID)
	if err != nil {
		t.Fatalf("ObjectIDFromHex: %v", err)
	}
	caller := &models.User{ID: ownerFromLower, Role: models.RoleRecruiter}

	r := ownershipRouter(repo, caller, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/job/"+job.ID.Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for canonically equal ids, got %d", w.Code)
	}
}
