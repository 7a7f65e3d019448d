package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/ssantos/wordkids/internal/repo"
)

type fakeUsers struct {
	byEmail map[string]*repo.User
	byID    map[string]*repo.User
}

func newFakeUsers(users ...*repo.User) *fakeUsers {
	f := &fakeUsers{
		byEmail: make(map[string]*repo.User),
		byID:    make(map[string]*repo.User),
	}
	for _, u := range users {
		f.byEmail[u.Email] = u
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*repo.User, error) {
	if u, ok := f.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repo.ErrUserNotFound
}

func (f *fakeUsers) GetUserByID(_ context.Context, id string) (*repo.User, error) {
	if u, ok := f.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repo.ErrUserNotFound
}

func (f *fakeUsers) AddPoints(_ context.Context, userID string, points int) error {
	if u, ok := f.byID[userID]; ok {
		u.Points += points
		return nil
	}
	return repo.ErrUserNotFound
}

func testUser(t *testing.T, password string) *repo.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &repo.User{
		ID:           "u1",
		Email:        "kid@example.com",
		DisplayName:  "Kid",
		PasswordHash: hash,
		Points:       100,
	}
}

func TestSignInSuccess(t *testing.T) {
	p := NewProvider(newFakeUsers(testUser(t, "segredo")))

	user, err := p.SignIn(context.Background(), "kid@example.com", "segredo")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("user id = %q", user.ID)
	}

	current := p.CurrentUser()
	if current == nil || current.ID != "u1" {
		t.Errorf("current user = %+v, want u1", current)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	p := NewProvider(newFakeUsers(testUser(t, "segredo")))

	_, err := p.SignIn(context.Background(), "kid@example.com", "errada")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if p.CurrentUser() != nil {
		t.Error("session opened on bad password")
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	p := NewProvider(newFakeUsers())

	_, err := p.SignIn(context.Background(), "ghost@example.com", "x")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials (indistinguishable from bad password)", err)
	}
}

func TestSignOut(t *testing.T) {
	p := NewProvider(newFakeUsers(testUser(t, "segredo")))
	if _, err := p.SignIn(context.Background(), "kid@example.com", "segredo"); err != nil {
		t.Fatal(err)
	}

	p.SignOut()
	if p.CurrentUser() != nil {
		t.Error("current user survives sign-out")
	}
}

func TestRefreshProfilePicksUpPoints(t *testing.T) {
	users := newFakeUsers(testUser(t, "segredo"))
	p := NewProvider(users)
	ctx := context.Background()
	if _, err := p.SignIn(ctx, "kid@example.com", "segredo"); err != nil {
		t.Fatal(err)
	}

	if err := users.AddPoints(ctx, "u1", 900); err != nil {
		t.Fatal(err)
	}

	fresh, err := p.RefreshProfile(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.Points != 1000 {
		t.Errorf("points = %d, want 1000", fresh.Points)
	}
	if got := p.CurrentUser(); got == nil || got.Points != 1000 {
		t.Errorf("current user points = %+v, want 1000", got)
	}
}

func TestRefreshProfileWithoutSession(t *testing.T) {
	p := NewProvider(newFakeUsers())
	_, err := p.RefreshProfile(context.Background())
	if !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("err = %v, want ErrNotSignedIn", err)
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("abc123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "abc123" || hash == "" {
		t.Errorf("hash = %q", hash)
	}
}
