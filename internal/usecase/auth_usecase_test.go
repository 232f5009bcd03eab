package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"
	mock_interfaces "meshguard_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		cases := []RegisterInput{
			{Name: "", Email: "a@b.com", Password: "secret1"},
			{Name: "Ann", Email: "not-an-email", Password: "secret1"},
			{Name: "Ann", Email: "a@b.com", Password: "12345"},
			{Name: "Ann", Email: "a@b.com", Password: "secret1", Phone: "12345"},
		}
		for _, in := range cases {
			if _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrInvalidUserInput) {
				t.Fatalf("expected ErrInvalidUserInput for %+v, got %v", in, err)
			}
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ann@example.com").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Register(context.Background(), RegisterInput{Name: "Ann", Email: " Ann@Example.com ", Password: "secret1"})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("duplicate key on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(repo, hasher, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ann@example.com").Return(entities.User{}, nil)
		hasher.EXPECT().Hash("secret1").Return("hash", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrDuplicateKey)

		_, err := uc.Register(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(repo, hasher, tokens)

		repo.EXPECT().GetByEmail(gomock.Any(), "ann@example.com").Return(entities.User{}, nil)
		hasher.EXPECT().Hash("secret1").Return("hash", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			if u.ID == "" || u.Role != entities.RoleUser || u.PasswordHash != "hash" {
				t.Fatalf("unexpected user: %+v", u)
			}
			if u.Phone != "254712345678" {
				t.Fatalf("expected normalized phone, got %q", u.Phone)
			}
			return u, nil
		})
		tokens.EXPECT().Issue(gomock.Any()).DoAndReturn(func(a entities.Actor) (string, error) {
			if a.Email != "ann@example.com" || a.Role != entities.RoleUser {
				t.Fatalf("unexpected actor: %+v", a)
			}
			return "tok", nil
		})

		res, err := uc.Register(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "secret1", Phone: "0712 345 678"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok" || res.User.Email != "ann@example.com" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(entities.User{}, nil)

		if _, err := uc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(repo, hasher, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ann@example.com").Return(entities.User{ID: "u-1", PasswordHash: "hash"}, nil)
		hasher.EXPECT().Compare("hash", "bad").Return(false)

		if _, err := uc.Login(context.Background(), "ann@example.com", "bad"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(repo, hasher, tokens)

		user := entities.User{ID: "u-1", Email: "ann@example.com", PasswordHash: "hash", Role: entities.RoleAdmin}
		repo.EXPECT().GetByEmail(gomock.Any(), "ann@example.com").Return(user, nil)
		hasher.EXPECT().Compare("hash", "secret1").Return(true)
		tokens.EXPECT().Issue(entities.Actor{UserID: "u-1", Email: "ann@example.com", Role: entities.RoleAdmin}).Return("tok", nil)

		res, err := uc.Login(context.Background(), "ANN@example.com", "secret1")
		if err != nil || res.Token != "tok" {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})
}

func TestAuthUseCase_MeAndListUsers(t *testing.T) {
	t.Run("me not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		if _, err := uc.Me(context.Background(), "u-1"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("list users requires admin", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if _, err := uc.ListUsers(context.Background(), entities.Actor{UserID: "u-1", Role: entities.RoleUser}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("list users newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, nil, nil)

		now := time.Now()
		repo.EXPECT().List(gomock.Any()).Return([]entities.User{
			{ID: "old", CreatedAt: now.Add(-time.Hour)},
			{ID: "new", CreatedAt: now},
		}, nil)

		users, err := uc.ListUsers(context.Background(), entities.Actor{UserID: "admin", Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 || users[0].ID != "new" {
			t.Fatalf("expected newest first, got %+v", users)
		}
	})
}

func TestAuthUseCase_EnsureAdmin(t *testing.T) {
	t.Run("promotes existing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "boss@example.com").Return(entities.User{ID: "u-1", Role: entities.RoleUser}, nil)
		repo.EXPECT().UpdateRole(gomock.Any(), "u-1", entities.RoleAdmin).Return(entities.User{ID: "u-1", Role: entities.RoleAdmin}, nil)

		u, err := uc.EnsureAdmin(context.Background(), "Boss", "boss@example.com", "secret1")
		if err != nil || !u.IsAdmin() {
			t.Fatalf("expected admin, got %+v err=%v", u, err)
		}
	})

	t.Run("already admin is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "boss@example.com").Return(entities.User{ID: "u-1", Role: entities.RoleAdmin}, nil)

		if _, err := uc.EnsureAdmin(context.Background(), "Boss", "boss@example.com", "secret1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
