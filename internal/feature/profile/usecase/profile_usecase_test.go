package usecase

import (
	"context"
	"errors"
	"testing"

	"movie_backend/internal/feature/auth/domain"
	"movie_backend/internal/feature/auth/domain/entity"
)

// mockProfileRepository is a mock implementation of the ProfileRepository interface.
type mockProfileRepository struct {
	FindByIDFunc           func(ctx context.Context, id uint) (*entity.User, error)
	FindByEmailFunc        func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFoldFunc func(ctx context.Context, username string) (*entity.User, error)
	SaveFunc               func(ctx context.Context, user *entity.User) error
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound // Default: not found
}

func (m *mockProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound // Default: not found
}

func (m *mockProfileRepository) FindByUsernameFold(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFoldFunc != nil {
		return m.FindByUsernameFoldFunc(ctx, username)
	}
	return nil, domain.ErrUserNotFound // Default: not found
}

func (m *mockProfileRepository) Save(ctx context.Context, user *entity.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil // Default: success
}

func strp(s string) *string { return &s }

func currentUser() *entity.User {
	return &entity.User{ID: 1, Username: "ana", Email: "ana@example.com", ProfilePicture: ""}
}

func TestProfileUsecase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the account", func(t *testing.T) {
		mockRepo := &mockProfileRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return currentUser(), nil
			},
		}
		uc := NewProfileUsecase(mockRepo)

		user, err := uc.Get(ctx, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "ana" {
			t.Errorf("expected username 'ana', got %q", user.Username)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := NewProfileUsecase(&mockProfileRepository{})

		_, err := uc.Get(ctx, 99)

		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}

func TestProfileUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("nil fields stay untouched", func(t *testing.T) {
		var saved *entity.User
		mockRepo := &mockProfileRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return currentUser(), nil
			},
			SaveFunc: func(ctx context.Context, user *entity.User) error {
				saved = user
				return nil
			},
		}
		uc := NewProfileUsecase(mockRepo)

		user, err := uc.Update(ctx, 1, ProfileUpdate{ProfilePicture: strp("https://example.com/pic.png")})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "ana" || user.Email != "ana@example.com" {
			t.Errorf("untouched fields changed: %+v", user)
		}
		if saved == nil || saved.ProfilePicture != "https://example.com/pic.png" {
			t.Errorf("profile picture not persisted: %+v", saved)
		}
	})

	t.Run("new email is lowercased", func(t *testing.T) {
		mockRepo := &mockProfileRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return currentUser(), nil
			},
		}
		uc := NewProfileUsecase(mockRepo)

		user, err := uc.Update(ctx, 1, ProfileUpdate{Email: strp("New@Example.COM")})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "new@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
	})

	t.Run("username taken by another account", func(t *testing.T) {
		mockRepo := &mockProfileRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return currentUser(), nil
			},
			FindByUsernameFoldFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{ID: 2, Username: "taken"}, nil
			},
			SaveFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Save must not be called after a conflict")
				return nil
			},
		}
		uc := NewProfileUsecase(mockRepo)

		_, err := uc.Update(ctx, 1, ProfileUpdate{Username: strp("taken")})

		if !errors.Is(err, domain.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got: %v", err)
		}
	})

	t.Run("username conflict wins over email conflict", func(t *testing.T) {
		other := &entity.User{ID: 2, Username: "taken", Email: "taken@example.com"}
		mockRepo := &mockProfileRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return currentUser(), nil
			},
			FindByUsernameFoldFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return other, nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return other, nil
			},
		}
		uc := NewProfileUsecase(mockRepo)

		_, err := uc.Update(ctx, 1, ProfileUpdate{Username: strp("taken"), Email: strp("taken@example.com")})

		if !errors.Is(err, domain.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got: %v", err)
		}
	})

	t.Run("keeping the current values is not a conflict", func(t *testing.T) {
		mockRepo := &mockProfileRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return currentUser(), nil
			},
			FindByUsernameFoldFunc: func(ctx context.Context, username string) (*entity.User, error) {
				t.Error("uniqueness must not be re-checked for an unchanged username")
				return nil, domain.ErrUserNotFound
			},
		}
		uc := NewProfileUsecase(mockRepo)

		_, err := uc.Update(ctx, 1, ProfileUpdate{Username: strp("ana"), Email: strp("ANA@example.com")})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("save race surfaces the adapter's conflict error", func(t *testing.T) {
		mockRepo := &mockProfileRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return currentUser(), nil
			},
			SaveFunc: func(ctx context.Context, user *entity.User) error {
				return domain.ErrEmailTaken
			},
		}
		uc := NewProfileUsecase(mockRepo)

		_, err := uc.Update(ctx, 1, ProfileUpdate{Email: strp("new@example.com")})

		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got: %v", err)
		}
	})
}
