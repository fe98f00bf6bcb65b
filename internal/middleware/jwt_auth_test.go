package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard/internal/auth"
	"jobboard/internal/models"
	"jobboard/internal/repository"
)

type mockUserRepo struct {
	users   map[string]*models.User
	lookups int
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.lookups++
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) SetResetCredential(ctx context.Context, id bson.ObjectID, token string, expires time.Time) error {
	return nil
}

func (m *mockUserRepo) ConsumeResetCredential(ctx context.Context, token string, passwordHash string, now time.Time) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func seekerRepo(email string) *mockUserRepo {
	return &mockUserRepo{users: map[string]*models.User{
		email: {ID: bson.NewObjectID(), Email: email, Role: models.RoleSeeker},
	}}
}

func doAuth(t *testing.T, repo *mockUserRepo, role models.Role, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := UserFromContext(r.Context()); !ok {
			t.Fatal("expected user in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	Authenticator(repo, "secret", role)(next).ServeHTTP(w, req)
	return w, called
}

func TestAuthenticatorMissingHeader(t *testing.T) {
	repo := seekerRepo("a@x.com")
	w, called := doAuth(t, repo, RoleAny, "")
	if w.Code != http.StatusUnauthorized || called {
		t.Fatalf("expected 401 without handler call, got %d called=%v", w.Code, called)
	}
	if repo.lookups != 0 {
		t.Fatalf("expected no lookup, got %d", repo.lookups)
	}
}

func TestAuthenticatorBadPrefix(t *testing.T) {
	repo := seekerRepo("a@x.com")
	w, _ := doAuth(t, repo, RoleAny, "Basic abc")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if repo.lookups != 0 {
		t.Fatalf("expected no lookup, got %d", repo.lookups)
	}
}

func TestAuthenticatorInvalidTokenSkipsLookup(t *testing.T) {
	repo := seekerRepo("a@x.com")
	w, _ := doAuth(t, repo, RoleAny, "Bearer not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if repo.lookups != 0 {
		t.Fatalf("expected no lookup for invalid token, got %d", repo.lookups)
	}
}

func TestAuthenticatorExpiredTokenSkipsLookup(t *testing.T) {
	repo := seekerRepo("a@x.com")
	token, err := auth.IssueToken("a@x.com", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	w, _ := doAuth(t, repo, RoleAny, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if repo.lookups != 0 {
		t.Fatalf("expected no lookup for expired token, got %d", repo.lookups)
	}
}

func TestAuthenticatorUnknownUserAndWrongRoleAreIndistinguishable(t *testing.T) {
	token, err := auth.IssueToken("a@x.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Account does not exist.
	wAbsent, _ := doAuth(t, &mockUserRepo{users: map[string]*models.User{}}, models.RoleRecruiter, "Bearer "+token)
	// Account exists but holds the wrong role.
	wWrongRole, _ := doAuth(t, seekerRepo("a@x.com"), models.RoleRecruiter, "Bearer "+token)

	if wAbsent.Code != http.StatusUnauthorized || wWrongRole.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wAbsent.Code, wWrongRole.Code)
	}
	if wAbsent.Body.String() != wWrongRole.Body.String() {
		t.Fatalf("expected identical bodies, got %q vs %q", wAbsent.Body.String(), wWrongRole.Body.String())
	}
}

func TestAuthenticatorRoleMatch(t *testing.T) {
	token, err := auth.IssueToken("a@x.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	w, called := doAuth(t, seekerRepo("a@x.com"), models.RoleSeeker, "Bearer "+token)
	if w.Code != http.StatusOK || !called {
		t.Fatalf("expected handler to run, got %d called=%v", w.Code, called)
	}
}

func TestAuthenticatorRoleAny(t *testing.T) {
	token, err := auth.IssueToken("a@x.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	w, called := doAuth(t, seekerRepo("a@x.com"), RoleAny, "Bearer "+token)
	if w.Code != http.StatusOK || !called {
		t.Fatalf("expected handler to run, got %d called=%v", w.Code, called)
	}
}
