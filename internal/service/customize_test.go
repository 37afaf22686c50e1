package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/art-exhibition/internal/models"
)

func testWizardOptions() WizardOptions {
	return WizardOptions{
		Colors:       FallbackWizardColors(),
		Scents:       FallbackWizardScents(),
		MaxScents:    3,
		MaxTitleLen:  20,
		LogoSizeFees: DefaultLogoSizeFees(),
	}
}

func TestComputeCustomPrice(t *testing.T) {
	tests := []struct {
		base, fee int64
		quantity  int
		unit      int64
		total     int64
	}{
		{base: 320000, fee: 0, quantity: 1, unit: 320000, total: 320000},
		{base: 320000, fee: 80000, quantity: 1, unit: 400000, total: 400000},
		{base: 320000, fee: 80000, quantity: 3, unit: 400000, total: 1200000},
		{base: 0, fee: 80000, quantity: 2, unit: 80000, total: 160000},
	}
	for _, tt := range tests {
		quote := ComputeCustomPrice(models.NewMoney(tt.base), models.NewMoney(tt.fee), tt.quantity)
		if quote.UnitPrice.IntPart() != tt.unit {
			t.Fatalf("unit price = %s, want %d", quote.UnitPrice, tt.unit)
		}
		if quote.TotalPrice.IntPart() != tt.total {
			t.Fatalf("total price = %s, want %d", quote.TotalPrice, tt.total)
		}
		if !quote.TotalPrice.Equal(quote.UnitPrice.Times(tt.quantity).Decimal) {
			t.Fatalf("total must equal unit * quantity: %s vs %s", quote.TotalPrice, quote.UnitPrice)
		}
	}
}

func TestWizardNextRequiresCompletedStep(t *testing.T) {
	w := NewWizard(testWizardOptions())
	if err := w.Next(); !errors.Is(err, ErrWizardColorRequired) {
		t.Fatalf("expected ErrWizardColorRequired, got %v", err)
	}
	if err := w.Back(); !errors.Is(err, ErrWizardInvalidStep) {
		t.Fatalf("back from first step should fail, got %v", err)
	}
	if err := w.SelectColor("#f8c8dc"); err != nil {
		t.Fatalf("select color: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := w.Next(); !errors.Is(err, ErrWizardScentRequired) {
		t.Fatalf("expected ErrWizardScentRequired, got %v", err)
	}
	if err := w.ToggleScent("vani"); err != nil {
		t.Fatalf("toggle scent: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := w.Next(); !errors.Is(err, ErrWizardTitleRequired) {
		t.Fatalf("expected ErrWizardTitleRequired, got %v", err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if w.Step() != WizardStepScent || !w.IsScentSelected("Vani") {
		t.Fatalf("back should keep scent selection, step=%s design=%+v", w.Step(), w.Design())
	}
}

func TestWizardSelectColorByNameStoresHex(t *testing.T) {
	w := NewWizard(testWizardOptions())
	if err := w.SelectColor("xanh bạc hà"); err != nil {
		t.Fatalf("select color: %v", err)
	}
	if got := w.Design().SelectedColor; got != "#98FF98" {
		t.Fatalf("selected color = %s", got)
	}
	if err := w.SelectColor("#000000"); !errors.Is(err, ErrWizardColorNotAllowed) {
		t.Fatalf("expected ErrWizardColorNotAllowed, got %v", err)
	}
}

func TestWizardToggleScentAtLimitIsNoop(t *testing.T) {
	w := NewWizard(testWizardOptions())
	_ = w.SelectColor("#FFFFF0")
	_ = w.Next()
	for _, scent := range []string{"Oải hương", "Vani", "Quế"} {
		if err := w.ToggleScent(scent); err != nil {
			t.Fatalf("toggle %s: %v", scent, err)
		}
	}
	before := w.Design().SelectedScents
	if err := w.ToggleScent("Cam ngọt"); err != nil {
		t.Fatalf("fourth toggle should not error, got %v", err)
	}
	after := w.Design().SelectedScents
	if !slices.Equal(before, after) {
		t.Fatalf("selection changed at limit: %v -> %v", before, after)
	}
	if w.IsScentSelected("Cam ngọt") {
		t.Fatalf("fourth scent must not be selected")
	}

	if err := w.ToggleScent("Vani"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if w.IsScentSelected("Vani") || len(w.Design().SelectedScents) != 2 {
		t.Fatalf("toggle should remove selected scent: %v", w.Design().SelectedScents)
	}
	if err := w.ToggleScent("Bạc hà"); !errors.Is(err, ErrWizardScentInvalid) {
		t.Fatalf("expected ErrWizardScentInvalid, got %v", err)
	}
}

func TestWizardSetLabel(t *testing.T) {
	w := NewWizard(testWizardOptions())
	_ = w.SelectColor("#FFFFF0")
	_ = w.Next()
	_ = w.ToggleScent("Quế")
	_ = w.Next()

	if err := w.SetLabel("Một tiêu đề rất rất dài vượt quá giới hạn", "", ""); !errors.Is(err, ErrWizardTitleTooLong) {
		t.Fatalf("expected ErrWizardTitleTooLong, got %v", err)
	}
	if err := w.SetLabel("Lan & Minh", "", "XL"); !errors.Is(err, ErrWizardLogoSizeInvalid) {
		t.Fatalf("expected ErrWizardLogoSizeInvalid, got %v", err)
	}
	if err := w.SetLabel("Lan & Minh", "/uploads/label/a.png", ""); err != nil {
		t.Fatalf("set label: %v", err)
	}
	if w.Design().LogoSize != "M" || !w.LogoFee().IsZero() {
		t.Fatalf("logo size should default to M with no fee: %+v", w.Design())
	}
	if err := w.SetLabel("Lan & Minh", "/uploads/label/a.png", "l"); err != nil {
		t.Fatalf("set label: %v", err)
	}
	if w.LogoFee().IntPart() != 80000 {
		t.Fatalf("large logo fee = %s", w.LogoFee())
	}
}

func TestReplayDesign(t *testing.T) {
	opts := testWizardOptions()
	design := CustomDesign{
		SelectedColor:  "Hồng phấn",
		SelectedScents: []string{"Vani", "vani", "Quế"},
		Title:          "Happy",
		LogoSize:       "L",
	}
	w, err := ReplayDesign(opts, design)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if w.Step() != WizardStepPreview {
		t.Fatalf("replay should end on preview, got %s", w.Step())
	}
	got := w.Design()
	if got.SelectedColor != "#F8C8DC" || !slices.Equal(got.SelectedScents, []string{"Vani", "Quế"}) {
		t.Fatalf("unexpected design: %+v", got)
	}

	design.SelectedScents = []string{"Vani", "Quế", "Cam ngọt", "Trà xanh"}
	if _, err := ReplayDesign(opts, design); !errors.Is(err, ErrWizardScentLimit) {
		t.Fatalf("expected ErrWizardScentLimit, got %v", err)
	}

	design.SelectedScents = nil
	if _, err := ReplayDesign(opts, design); !errors.Is(err, ErrWizardScentRequired) {
		t.Fatalf("expected ErrWizardScentRequired, got %v", err)
	}
}

func TestWizardSubmitRequiresApproval(t *testing.T) {
	w, err := ReplayDesign(testWizardOptions(), CustomDesign{
		SelectedColor:  "#FFFFF0",
		SelectedScents: []string{"Vani"},
		Title:          "Chúc mừng",
		LogoSize:       "L",
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	product := &models.Product{
		ID:             7,
		Name:           "Nến ly",
		OriginalPrice:  models.NewMoney(350000),
		SalePrice:      models.NewMoney(320000),
		IsCustomizable: true,
	}
	if _, err := w.Submit(product, 1, false); !errors.Is(err, ErrWizardApprovalRequired) {
		t.Fatalf("expected ErrWizardApprovalRequired, got %v", err)
	}
	item, err := w.Submit(product, 2, true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if item.SalePrice.IntPart() != 400000 || item.OriginalPrice.IntPart() != 430000 {
		t.Fatalf("unexpected prices: sale=%s original=%s", item.SalePrice, item.OriginalPrice)
	}
	if item.LineTotal().IntPart() != 800000 {
		t.Fatalf("line total = %s", item.LineTotal())
	}
	if item.Customization == nil || item.Customization.LogoFee.IntPart() != 80000 {
		t.Fatalf("missing customization snapshot: %+v", item.Customization)
	}
	if !slices.Equal(item.SelectedColors, []string{"#FFFFF0"}) {
		t.Fatalf("selected colors = %v", item.SelectedColors)
	}
}

func TestCustomizeServiceOptionsAndQuote(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()

	opts, err := f.customize.Options(ctx, f.customMug.ID)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(opts.Colors) != 2 || opts.Colors[0].HexCode != "#FFFFF0" {
		t.Fatalf("colors should come from catalog: %+v", opts.Colors)
	}
	if len(opts.Scents) != 4 || opts.MaxScents != 3 {
		t.Fatalf("unexpected scents: %+v", opts)
	}
	if len(opts.LogoSizes) != 2 || opts.LogoSizes[1].Fee.IntPart() != 80000 {
		t.Fatalf("unexpected logo sizes: %+v", opts.LogoSizes)
	}

	if _, err := f.customize.Options(ctx, f.plainCandle.ID); !errors.Is(err, ErrProductNotCustomizable) {
		t.Fatalf("expected ErrProductNotCustomizable, got %v", err)
	}

	quote, err := f.customize.Quote(ctx, QuoteInput{ProductID: f.customMug.ID, LogoSize: "L", Quantity: 2})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.UnitPrice.IntPart() != 400000 || quote.TotalPrice.IntPart() != 800000 {
		t.Fatalf("unexpected quote: %+v", quote)
	}
	if _, err := f.customize.Quote(ctx, QuoteInput{ProductID: f.customMug.ID, LogoSize: "S"}); !errors.Is(err, ErrWizardLogoSizeInvalid) {
		t.Fatalf("expected ErrWizardLogoSizeInvalid, got %v", err)
	}
}

func TestCustomizeServiceSubmitRejectsColorOutsideCatalog(t *testing.T) {
	f := newShopFixture(t)
	_, err := f.customize.Submit(context.Background(), SubmitDesignInput{
		CartID:    "cart-1",
		ProductID: f.customMug.ID,
		Design: CustomDesign{
			SelectedColor:  "#98FF98",
			SelectedScents: []string{"Vani"},
			Title:          "Hi",
		},
		Quantity: 1,
		Approved: true,
	})
	if !errors.Is(err, ErrWizardColorNotAllowed) {
		t.Fatalf("expected ErrWizardColorNotAllowed, got %v", err)
	}
}
