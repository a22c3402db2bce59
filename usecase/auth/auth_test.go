package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/pkg/password"
	"github.com/Pawankumarhr/prime-trade/pkg/token"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  string
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	user := &domain.User{
		ID:           f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.byEmail[email] = user
	return user, nil
}

func newTestUseCase() (*UseCase, *fakeUserRepo, *token.Codec) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{}, nextID: "user-1"}
	codec := token.New("test-secret", time.Hour)
	return New(repo, codec, nil), repo, codec
}

func TestSignup_IssuesVerifiableToken(t *testing.T) {
	uc, _, codec := newTestUseCase()

	signed, user, err := uc.Signup(context.Background(), "Ada", "ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("user.ID = %q", user.ID)
	}

	subject, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if subject != user.ID {
		t.Errorf("token subject = %q, want %q", subject, user.ID)
	}
}

func TestSignup_StoresHashNotPassword(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	if _, _, err := uc.Signup(context.Background(), "Ada", "ada@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	stored := repo.byEmail["ada@example.com"]
	if stored.PasswordHash == "hunter22" {
		t.Error("password stored in the clear")
	}
	if !password.Verify("hunter22", stored.PasswordHash) {
		t.Error("stored hash does not verify the original password")
	}
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUseCase()

	if _, _, err := uc.Signup(context.Background(), "Ada", "ada@example.com", "hunter22"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, _, err := uc.Signup(context.Background(), "Imposter", "ada@example.com", "other")
	if !domain.IsDomainError(err, domain.ErrCodeEmailTaken) {
		t.Errorf("err = %v, want EMAIL_TAKEN", err)
	}
}

func TestSignup_RejectsMalformedInput(t *testing.T) {
	uc, _, _ := newTestUseCase()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{name: "missing name", email: "a@b.c", password: "x"},
		{name: "missing password", userName: "Ada", email: "a@b.c"},
		{name: "email without at-sign", userName: "Ada", email: "nope", password: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uc.Signup(context.Background(), tt.userName, tt.email, tt.password)
			if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Errorf("err = %v, want INVALID", err)
			}
		})
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	uc, _, _ := newTestUseCase()

	if _, _, err := uc.Signup(context.Background(), "Ada", "ada@example.com", "hunter22"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, unknownErr := uc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, wrongErr := uc.Login(context.Background(), "ada@example.com", "wrong")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", unknownErr)
	}
	if wrongErr != domain.ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", wrongErr)
	}
}

func TestLogin_ValidCredentials(t *testing.T) {
	uc, _, codec := newTestUseCase()

	_, created, err := uc.Signup(context.Background(), "Ada", "Ada@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Email lookup is case-insensitive on the normalized form.
	signed, user, err := uc.Login(context.Background(), "ADA@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("user.ID = %q, want %q", user.ID, created.ID)
	}
	if subject, err := codec.Verify(signed); err != nil || subject != created.ID {
		t.Errorf("token subject = %q (err %v), want %q", subject, err, created.ID)
	}
}
