package service

import (
	"context"
	"errors"
	"testing"
)

func TestCartScenarioPlainAndCustomLines(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()
	cartID := "cart-scenario"

	cart, err := f.cart.AddItem(ctx, cartID, AddCartItemInput{ProductID: f.plainCandle.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if cart.Total().IntPart() != 640000 {
		t.Fatalf("cart total = %s, want 640000", cart.Total())
	}

	cart, err = f.customize.Submit(ctx, SubmitDesignInput{
		CartID:    cartID,
		ProductID: f.customMug.ID,
		Design: CustomDesign{
			SelectedColor:  "#FFFFF0",
			SelectedScents: []string{"Vani"},
			Title:          "Lan",
			LogoSize:       "L",
		},
		Quantity: 1,
		Approved: true,
	})
	if err != nil {
		t.Fatalf("submit design: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	if got := cart.Items[1].LineTotal().IntPart(); got != 400000 {
		t.Fatalf("custom line total = %d, want 400000", got)
	}
	if cart.Total().IntPart() != 1040000 {
		t.Fatalf("cart total = %s, want 1040000", cart.Total())
	}

	view := BuildCartView(cart)
	if view.ItemCount != 3 || view.Total.IntPart() != 1040000 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestCartAddItemMergesSameOptions(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()
	input := AddCartItemInput{ProductID: f.plainCandle.ID, SelectedColors: []string{"#f8c8dc", "#FFFFF0"}, SelectedSize: "medium"}

	if _, err := f.cart.AddItem(ctx, "c", input); err != nil {
		t.Fatalf("add: %v", err)
	}
	input.SelectedColors = []string{"#FFFFF0", "#F8C8DC"}
	cart, err := f.cart.AddItem(ctx, "c", input)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("same options should merge: %+v", cart.Items)
	}
	if cart.Items[0].SelectedSize != "MEDIUM" {
		t.Fatalf("size = %s", cart.Items[0].SelectedSize)
	}

	if _, err := f.cart.AddItem(ctx, "c", AddCartItemInput{ProductID: f.plainCandle.ID, SelectedSize: "LARGE"}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := f.cart.AddItem(ctx, "c", AddCartItemInput{ProductID: f.plainCandle.ID, SelectedColors: []string{"#000000"}}); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	if _, err := f.cart.AddItem(ctx, "c", AddCartItemInput{ProductID: 9999}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartDecreaseBelowOneIsRejected(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()
	cart, err := f.cart.AddItem(ctx, "c", AddCartItemInput{ProductID: f.plainCandle.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	lineID := cart.Items[0].ID

	if _, err := f.cart.UpdateQuantity(ctx, "c", lineID, "decrease"); !errors.Is(err, ErrQuantityBelowMinimum) {
		t.Fatalf("expected ErrQuantityBelowMinimum, got %v", err)
	}
	cart, err = f.cart.Get(ctx, "c")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("quantity changed after rejected decrease: %d", cart.Items[0].Quantity)
	}

	cart, err = f.cart.UpdateQuantity(ctx, "c", lineID, "increase")
	if err != nil || cart.Items[0].Quantity != 2 {
		t.Fatalf("increase failed: %v %+v", err, cart)
	}
	if _, err := f.cart.UpdateQuantity(ctx, "c", lineID, "sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
	if _, err := f.cart.UpdateQuantity(ctx, "c", "missing", "increase"); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()
	cart, _ := f.cart.AddItem(ctx, "c", AddCartItemInput{ProductID: f.plainCandle.ID})
	cart, err := f.cart.RemoveItem(ctx, "c", cart.Items[0].ID)
	if err != nil || len(cart.Items) != 0 {
		t.Fatalf("remove failed: %v %+v", err, cart)
	}
	_, _ = f.cart.AddItem(ctx, "c", AddCartItemInput{ProductID: f.plainCandle.ID})
	if err := f.cart.Clear(ctx, "c"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, err = f.cart.Get(ctx, "c")
	if err != nil || len(cart.Items) != 0 {
		t.Fatalf("cart should be empty after clear: %v %+v", err, cart)
	}
}
