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

func TestContactUseCase_Submit(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil)
		cases := []ContactMessageInput{
			{Name: "", Email: "a@b.com", Message: "hi"},
			{Name: "Ann", Email: "nope", Message: "hi"},
			{Name: "Ann", Email: "a@b.com", Message: "  "},
		}
		for _, in := range cases {
			if _, err := uc.Submit(context.Background(), in); !errors.Is(err, ErrInvalidContactMessage) {
				t.Fatalf("expected ErrInvalidContactMessage for %+v, got %v", in, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewContactUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
			if m.ID == "" || m.Phone != "254712345678" || m.Email != "ann@example.com" {
				t.Fatalf("unexpected message: %+v", m)
			}
			return m, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), interfaces.EventContactMessage, gomock.Any()).Return(interfaces.NotifyResult{Delivered: true})

		_, err := uc.Submit(context.Background(), ContactMessageInput{Name: "Ann", Email: "Ann@example.com", Phone: "0712345678", Message: "Do you cover Ruaka?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContactUseCase_List(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil)
		if _, err := uc.List(context.Background(), customer); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		uc := NewContactUseCase(repo, nil)

		now := time.Now()
		repo.EXPECT().List(gomock.Any()).Return([]entities.ContactMessage{
			{ID: "m-1", CreatedAt: now.Add(-time.Hour)},
			{ID: "m-2", CreatedAt: now},
		}, nil)

		msgs, err := uc.List(context.Background(), admin)
		if err != nil || msgs[0].ID != "m-2" {
			t.Fatalf("unexpected result %+v err=%v", msgs, err)
		}
	})
}
