package unit

import (
	"context"
	"errors"
	"testing"

	category "bazaar/contexts/catalog/category-service"
	domainerrors "bazaar/contexts/catalog/category-service/domain/errors"
	httptransport "bazaar/contexts/catalog/category-service/transport/http"
)

func TestCategoryCreateAndList(t *testing.T) {
	module := category.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CategoryRequest{
		Name: "Apparel", Slug: "apparel", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if created.Data.CategoryID == "" {
		t.Fatal("expected generated category id")
	}

	resp, err := module.Handler.ListCategoriesHandler(ctx, true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Data.Items) != 1 || !resp.Data.CanEdit {
		t.Fatalf("unexpected list %+v", resp.Data)
	}
}

func TestCategorySlugValidation(t *testing.T) {
	module := category.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, slug := range []string{"", "Bad Slug", "UPPER", "trailing-", "-leading", "double--dash"} {
		_, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CategoryRequest{Name: "X", Slug: slug})
		if !errors.Is(err, domainerrors.ErrInvalidCategoryInput) {
			t.Fatalf("slug %q: expected invalid input, got %v", slug, err)
		}
	}
}

func TestCategorySlugConflict(t *testing.T) {
	module := category.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CategoryRequest{Name: "A", Slug: "shared"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CategoryRequest{Name: "B", Slug: "shared"})
	if !errors.Is(err, domainerrors.ErrSlugConflict) {
		t.Fatalf("expected slug conflict, got %v", err)
	}
}

func TestCategoryParentMustExist(t *testing.T) {
	module := category.NewInMemoryModule(nil)
	_, err := module.Handler.CreateCategoryHandler(context.Background(), httptransport.CategoryRequest{
		Name: "Child", Slug: "child", ParentID: "missing",
	})
	if !errors.Is(err, domainerrors.ErrParentNotFound) {
		t.Fatalf("expected parent not found, got %v", err)
	}
}

func TestCategoryDeleteBlockedByChildren(t *testing.T) {
	module := category.NewInMemoryModule(nil)
	ctx := context.Background()

	parent, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CategoryRequest{Name: "Parent", Slug: "parent"})
	if err != nil {
		t.Fatalf("create parent failed: %v", err)
	}
	child, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CategoryRequest{
		Name: "Child", Slug: "child", ParentID: parent.Data.CategoryID,
	})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}

	if err := module.Handler.DeleteCategoryHandler(ctx, parent.Data.CategoryID); !errors.Is(err, domainerrors.ErrCategoryHasChildren) {
		t.Fatalf("expected has-children error, got %v", err)
	}

	if err := module.Handler.DeleteCategoryHandler(ctx, child.Data.CategoryID); err != nil {
		t.Fatalf("delete child failed: %v", err)
	}
	if err := module.Handler.DeleteCategoryHandler(ctx, parent.Data.CategoryID); err != nil {
		t.Fatalf("delete parent after child removed failed: %v", err)
	}
}

func TestCategoryUpdateChangesFields(t *testing.T) {
	module := category.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CategoryRequest{Name: "Old", Slug: "old", IsActive: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	updated, err := module.Handler.UpdateCategoryHandler(ctx, created.Data.CategoryID, httptransport.CategoryRequest{
		Name: "New", Slug: "new", IsActive: false,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Data.Name != "New" || updated.Data.Slug != "new" || updated.Data.IsActive {
		t.Fatalf("unexpected category %+v", updated.Data)
	}
}
