package usecase

import (
	"context"
	"errors"
	"log"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/domain/phone"
	"meshguard_api/internal/usecase/interfaces"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const minPasswordLength = 6

var (
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// AuthResult is returned by register and login: a signed session token plus the user summary.
type AuthResult struct {
	Token string
	User  entities.User
}

// IAuthUseCase covers the identity store and token issuing.
//
// Tokens are stateless: there is no server-side session table, so a token stays
// valid until it expires even after the client "logs out".
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Me(ctx context.Context, userID string) (entities.User, error)
	ListUsers(ctx context.Context, actor entities.Actor) ([]entities.User, error)
	EnsureAdmin(ctx context.Context, name, email, password string) (entities.User, error)
}

type AuthUseCase struct {
	repo   interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{repo: repo, hasher: hasher, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || !isEmail(email) || len(in.Password) < minPasswordLength {
		log.Printf("[auth][usecase] register rejected email=%q", email)
		return AuthResult{}, ErrInvalidUserInput
	}

	normalizedPhone := ""
	if strings.TrimSpace(in.Phone) != "" {
		p, err := phone.Normalize(in.Phone)
		if err != nil {
			return AuthResult{}, ErrInvalidUserInput
		}
		normalizedPhone = p
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return AuthResult{}, err
	} else if existing.ID != "" {
		log.Printf("[auth][usecase] register duplicate email=%s", email)
		return AuthResult{}, ErrUserAlreadyExists
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        normalizedPhone,
		Role:         entities.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return AuthResult{}, ErrUserAlreadyExists
		}
		log.Printf("[auth][usecase] register create failed email=%s err=%v", email, err)
		return AuthResult{}, err
	}
	log.Printf("[auth][usecase] register success user_id=%s", created.ID)

	return u.issue(created)
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" || !u.hasher.Compare(user.PasswordHash, password) {
		log.Printf("[auth][usecase] login rejected email=%s", email)
		return AuthResult{}, ErrInvalidCredentials
	}

	return u.issue(user)
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *AuthUseCase) ListUsers(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

// EnsureAdmin creates an admin account, or promotes the existing account with that email.
// The password is only applied when the account is created.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, name, email, password string) (entities.User, error) {
	email = normalizeEmail(email)
	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		if existing.IsAdmin() {
			return existing, nil
		}
		log.Printf("[auth][usecase] promoting user to admin user_id=%s", existing.ID)
		return u.repo.UpdateRole(ctx, existing.ID, entities.RoleAdmin)
	}

	res, err := u.Register(ctx, RegisterInput{Name: name, Email: email, Password: password})
	if err != nil {
		return entities.User{}, err
	}
	return u.repo.UpdateRole(ctx, res.User.ID, entities.RoleAdmin)
}

func (u *AuthUseCase) issue(user entities.User) (AuthResult, error) {
	token, err := u.tokens.Issue(entities.Actor{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
