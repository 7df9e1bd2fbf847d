package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifehub/backend/internal/application/adapter"
	"github.com/lifehub/backend/internal/domain/entity"
	domainerror "github.com/lifehub/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	adapter.CategoryRepository

	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	c := *category
	f.categories[category.ID] = &c
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if c.UserID == userID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ExistsByUserAndName(_ context.Context, userID uuid.UUID, name string) (bool, error) {
	for _, c := range f.categories {
		if c.UserID == userID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	c := *category
	f.categories[category.ID] = &c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

func asCategoryError(t *testing.T, err error) *domainerror.CategoryError {
	t.Helper()
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CategoryError, got %v", err)
	}
	return catErr
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates category with defaults", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Category.Color != entity.DefaultCategoryColor {
			t.Errorf("expected default color, got %s", output.Category.Color)
		}
		if output.Category.Icon != entity.DefaultCategoryIcon {
			t.Errorf("expected default icon, got %s", output.Category.Icon)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected 1 stored category, got %d", len(repo.categories))
		}
	})

	t.Run("rejects duplicate name for the same user", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		if _, err := uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Rent", Type: entity.CategoryTypeExpense}); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Rent", Type: entity.CategoryTypeExpense})
		if catErr := asCategoryError(t, err); catErr.Code != domainerror.ErrCodeCategoryNameExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNameExists, catErr.Code)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		tests := []struct {
			name     string
			input    CreateCategoryInput
			wantCode domainerror.CategoryErrorCode
		}{
			{
				name:     "empty name",
				input:    CreateCategoryInput{UserID: userID, Type: entity.CategoryTypeExpense},
				wantCode: domainerror.ErrCodeMissingCategoryFields,
			},
			{
				name:     "bad color",
				input:    CreateCategoryInput{UserID: userID, Name: "Food", Color: "red", Type: entity.CategoryTypeExpense},
				wantCode: domainerror.ErrCodeInvalidColorFormat,
			},
			{
				name:     "bad type",
				input:    CreateCategoryInput{UserID: userID, Name: "Food", Type: "transfer"},
				wantCode: domainerror.ErrCodeInvalidCategoryType,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)
				if catErr := asCategoryError(t, err); catErr.Code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, catErr.Code)
				}
			})
		}
	})
}

func TestUpdateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(repo *fakeCategoryRepo, name string) *entity.Category {
		c := entity.NewCategory(userID, name, entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense)
		repo.categories[c.ID] = c
		return c
	}

	t.Run("renames and recolors", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpdateCategoryUseCase(repo)
		c := seed(repo, "Food")

		name := "Dining"
		color := "#FF8800"
		output, err := uc.Execute(ctx, UpdateCategoryInput{UserID: userID, CategoryID: c.ID, Name: &name, Color: &color})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Category.Name != "Dining" || output.Category.Color != "#FF8800" {
			t.Errorf("unexpected category after update: %+v", output.Category)
		}
		if repo.categories[c.ID].Name != "Dining" {
			t.Errorf("rename was not persisted")
		}
	})

	t.Run("rejects rename onto an existing name", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpdateCategoryUseCase(repo)
		seed(repo, "Rent")
		c := seed(repo, "Food")

		name := "Rent"
		_, err := uc.Execute(ctx, UpdateCategoryInput{UserID: userID, CategoryID: c.ID, Name: &name})
		if catErr := asCategoryError(t, err); catErr.Code != domainerror.ErrCodeCategoryNameExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNameExists, catErr.Code)
		}
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewUpdateCategoryUseCase(repo)
		c := seed(repo, "Food")

		name := "Dining"
		_, err := uc.Execute(ctx, UpdateCategoryInput{UserID: uuid.New(), CategoryID: c.ID, Name: &name})
		if catErr := asCategoryError(t, err); catErr.Code != domainerror.ErrCodeNotAuthorizedCategory {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedCategory, catErr.Code)
		}
	})
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeCategoryRepo()
	uc := NewDeleteCategoryUseCase(repo)
	c := entity.NewCategory(userID, "Food", entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense)
	repo.categories[c.ID] = c

	if err := uc.Execute(ctx, DeleteCategoryInput{UserID: userID, CategoryID: c.ID}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.categories) != 0 {
		t.Errorf("expected category removed, got %d remaining", len(repo.categories))
	}

	if err := uc.Execute(ctx, DeleteCategoryInput{UserID: userID, CategoryID: c.ID}); err == nil {
		t.Errorf("expected not-found error for second delete")
	}
}
