package unit

import (
	"context"
	"errors"
	"testing"

	product "bazaar/contexts/catalog/product-service"
	domainerrors "bazaar/contexts/catalog/product-service/domain/errors"
	httptransport "bazaar/contexts/catalog/product-service/transport/http"
)

func TestProductCreateAndGet(t *testing.T) {
	module := product.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateProductHandler(ctx, httptransport.CreateProductRequest{
		Name:       "Enamel Mug",
		SKU:        "MUG-001",
		PriceCents: 1500,
		Status:     "active",
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if created.Data.ProductID == "" {
		t.Fatal("expected generated product id")
	}

	got, err := module.Handler.GetProductHandler(ctx, created.Data.ProductID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.Data.SKU != "MUG-001" || got.Data.PriceCents != 1500 {
		t.Fatalf("unexpected product %+v", got.Data)
	}
}

func TestProductCreateDefaultsToDraft(t *testing.T) {
	module := product.NewInMemoryModule(nil)
	created, err := module.Handler.CreateProductHandler(context.Background(), httptransport.CreateProductRequest{
		Name:       "Poster",
		SKU:        "POS-001",
		PriceCents: 900,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if created.Data.Status != "draft" {
		t.Fatalf("expected draft status, got %s", created.Data.Status)
	}
}

func TestProductCreateRejectsInvalidInput(t *testing.T) {
	module := product.NewInMemoryModule(nil)
	ctx := context.Background()

	cases := []httptransport.CreateProductRequest{
		{SKU: "X-1", PriceCents: 100},                                  // missing name
		{Name: "X", PriceCents: 100},                                   // missing sku
		{Name: "X", SKU: "X-1", PriceCents: -5},                        // negative price
		{Name: "X", SKU: "X-1", PriceCents: 100, Status: "mislabeled"}, // unknown status
	}
	for _, req := range cases {
		if _, err := module.Handler.CreateProductHandler(ctx, req); !errors.Is(err, domainerrors.ErrInvalidProductInput) {
			t.Fatalf("request %+v: expected invalid input, got %v", req, err)
		}
	}
}

func TestProductSKUConflict(t *testing.T) {
	module := product.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.CreateProductHandler(ctx, httptransport.CreateProductRequest{
		Name: "A", SKU: "DUP-1", PriceCents: 100,
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := module.Handler.CreateProductHandler(ctx, httptransport.CreateProductRequest{
		Name: "B", SKU: "DUP-1", PriceCents: 200,
	})
	if !errors.Is(err, domainerrors.ErrSKUConflict) {
		t.Fatalf("expected sku conflict, got %v", err)
	}
}

func TestProductListFiltersAndPages(t *testing.T) {
	module := product.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, req := range []httptransport.CreateProductRequest{
		{Name: "Alpha Shirt", SKU: "SHIRT-1", PriceCents: 100, Status: "active"},
		{Name: "Beta Shirt", SKU: "SHIRT-2", PriceCents: 200, Status: "draft"},
		{Name: "Gamma Cup", SKU: "CUP-1", PriceCents: 300, Status: "active"},
	} {
		if _, err := module.Handler.CreateProductHandler(ctx, req); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	resp, err := module.Handler.ListProductsHandler(ctx, httptransport.ListProductsRequest{Status: "active"}, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Data.Total != 2 || len(resp.Data.Items) != 2 {
		t.Fatalf("expected 2 active products, got total=%d items=%d", resp.Data.Total, len(resp.Data.Items))
	}

	resp, err = module.Handler.ListProductsHandler(ctx, httptransport.ListProductsRequest{Search: "shirt"}, false)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if resp.Data.Total != 2 {
		t.Fatalf("expected 2 shirts, got %d", resp.Data.Total)
	}

	resp, err = module.Handler.ListProductsHandler(ctx, httptransport.ListProductsRequest{Page: 2, PerPage: 2}, false)
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if resp.Data.Total != 3 || len(resp.Data.Items) != 1 {
		t.Fatalf("expected second page with 1 item of 3, got total=%d items=%d", resp.Data.Total, len(resp.Data.Items))
	}
}

func TestProductArchiveRemovesFromActiveListing(t *testing.T) {
	module := product.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateProductHandler(ctx, httptransport.CreateProductRequest{
		Name: "Sticker", SKU: "STK-1", PriceCents: 100, Status: "active",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := module.Handler.ArchiveProductHandler(ctx, created.Data.ProductID); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	got, err := module.Handler.GetProductHandler(ctx, created.Data.ProductID)
	if err != nil {
		t.Fatalf("get after archive failed: %v", err)
	}
	if got.Data.Status != "archived" {
		t.Fatalf("expected archived, got %s", got.Data.Status)
	}

	resp, err := module.Handler.ListProductsHandler(ctx, httptransport.ListProductsRequest{Status: "active"}, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Data.Total != 0 {
		t.Fatalf("archived product still listed as active: %+v", resp.Data)
	}
}

func TestProductGetUnknownID(t *testing.T) {
	module := product.NewInMemoryModule(nil)
	_, err := module.Handler.GetProductHandler(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrProductNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
