package repository

import (
	"testing"

	"github.com/art-exhibition/internal/models"

	"gorm.io/gorm"
)

func seedProductRelations(t *testing.T, db *gorm.DB) ProductRelations {
	t.Helper()
	colorRepo := NewColorRepository(db)
	sizeRepo := NewSizeRepository(db)
	categoryRepo := NewCategoryRepository(db)
	white := &models.Color{Name: "Trắng ngà", HexCode: "#FFFFF0"}
	pink := &models.Color{Name: "Hồng phấn", HexCode: "#F8C8DC"}
	for _, c := range []*models.Color{white, pink} {
		if err := colorRepo.Create(c); err != nil {
			t.Fatalf("create color failed: %v", err)
		}
	}
	small := &models.Size{Name: "SMALL"}
	if err := sizeRepo.Create(small); err != nil {
		t.Fatalf("create size failed: %v", err)
	}
	category := &models.Category{Name: "Nến thơm", Slug: "nen-thom"}
	if err := categoryRepo.Create(category); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return ProductRelations{
		Colors:     []models.Color{*white, *pink},
		Sizes:      []models.Size{*small},
		Categories: []models.Category{*category},
	}
}

func TestProductRepositoryCreateWithRelations(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	relations := seedProductRelations(t, db)

	product := &models.Product{
		Name:          "Nến hoa hồng",
		Slug:          "nen-hoa-hong",
		OriginalPrice: models.NewMoney(400000),
		SalePrice:     models.NewMoney(320000),
		ImageURLs:     models.StringArray{"/a.jpg", "/b.jpg"},
		IsActive:      true,
	}
	if err := repo.Create(product, relations); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil || got == nil {
		t.Fatalf("get product failed: %v", err)
	}
	if len(got.Colors) != 2 || len(got.Sizes) != 1 || len(got.Categories) != 1 {
		t.Fatalf("unexpected relations: colors=%d sizes=%d categories=%d", len(got.Colors), len(got.Sizes), len(got.Categories))
	}
	if got.ImageURLs[1] != "/b.jpg" {
		t.Fatalf("image order should be kept, got %v", got.ImageURLs)
	}
	if got.SalePrice.IntPart() != 320000 {
		t.Fatalf("want sale price 320000 got %s", got.SalePrice.String())
	}

	got.Name = "Nến hoa hồng lớn"
	if err := repo.Update(got, ProductRelations{Colors: relations.Colors[:1]}); err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	updated, err := repo.GetByID(product.ID)
	if err != nil || updated == nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if updated.Name != "Nến hoa hồng lớn" || len(updated.Colors) != 1 || len(updated.Sizes) != 0 || len(updated.Categories) != 0 {
		t.Fatalf("relations should be replaced, got %+v", updated)
	}
}

func TestProductRepositoryListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	relations := seedProductRelations(t, db)

	products := []struct {
		product   models.Product
		relations ProductRelations
	}{
		{models.Product{Name: "Nến oải hương", Slug: "nen-oai-huong", IsActive: true}, relations},
		{models.Product{Name: "Tranh sơn dầu", Slug: "tranh-son-dau", IsActive: true}, ProductRelations{}},
		{models.Product{Name: "Nến ẩn", Slug: "nen-an", IsActive: false}, relations},
	}
	for i := range products {
		if err := repo.Create(&products[i].product, products[i].relations); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	list, total, err := repo.List(ProductListFilter{OnlyActive: true, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("want 2 active products got total=%d len=%d", total, len(list))
	}

	list, total, err = repo.List(ProductListFilter{CategoryID: relations.Categories[0].ID, OnlyActive: true})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 || list[0].Slug != "nen-oai-huong" {
		t.Fatalf("unexpected category filter result: total=%d list=%+v", total, list)
	}

	_, total, err = repo.List(ProductListFilter{Search: "tranh"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("search want 1 got %d", total)
	}

	if count, err := repo.CountBySlug("nen-an", 0); err != nil || count != 1 {
		t.Fatalf("count by slug want 1 got %d err %v", count, err)
	}
	if err := repo.Delete(products[2].product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got, err := repo.GetBySlug("nen-an", false); err != nil || got != nil {
		t.Fatalf("deleted product should not be found, got=%v err=%v", got, err)
	}
}
