package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gosocial/internal/model"
	"gosocial/internal/pkg/jwtutil"
)

type fakeUserRepo struct {
	byUsername  map[string]*model.User
	nextID      uint
	dupOnCreate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if f.dupOnCreate {
		return fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)
	}
	user.ID = f.nextID
	f.nextID++
	f.byUsername[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*model.User, error) {
	return f.byUsername[username], nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(RegisterInput{Name: "Alice", Username: "alice", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Error("registered user has no id")
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	// Same username again must conflict and must not create a second record.
	if _, err := svc.Register(RegisterInput{Name: "Imposter", Username: "alice", Password: "hunter23"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate register err = %v, want ErrUsernameTaken", err)
	}
	if len(repo.byUsername) != 1 {
		t.Errorf("repo holds %d users, want 1", len(repo.byUsername))
	}
}

func TestRegisterInvalidInput(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "secret", time.Hour)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"empty name", RegisterInput{Username: "alice", Password: "p"}},
		{"whitespace username", RegisterInput{Name: "A", Username: "   ", Password: "p"}},
		{"empty password", RegisterInput{Name: "A", Username: "alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRegisterRaceLosesToUniqueIndex(t *testing.T) {
	repo := newFakeUserRepo()
	repo.dupOnCreate = true
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(RegisterInput{Name: "A", Username: "alice", Password: "p"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	registered, err := svc.Register(RegisterInput{Name: "Alice", Username: "alice", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login(LoginInput{Username: "alice", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := jwtutil.ParseToken("secret", result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Errorf("token subject = %d, want %d", claims.UserID, registered.ID)
	}
	if until := time.Until(result.ExpiresAt); until < 59*time.Minute || until > time.Hour {
		t.Errorf("ExpiresAt %v not about one hour out", result.ExpiresAt)
	}

	if _, err := svc.Login(LoginInput{Username: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredential", err)
	}
	if _, err := svc.Login(LoginInput{Username: "nobody", Password: "hunter22"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredential", err)
	}
}
