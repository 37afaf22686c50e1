package service

import (
	"strings"
	"unicode/utf8"

	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/models"
)

// WizardStep 定制向导步骤
type WizardStep int

const (
	WizardStepColor WizardStep = iota
	WizardStepScent
	WizardStepLabel
	WizardStepPreview
)

// String 步骤名称
func (s WizardStep) String() string {
	switch s {
	case WizardStepColor:
		return "color"
	case WizardStepScent:
		return "scent"
	case WizardStepLabel:
		return "label"
	case WizardStepPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// WizardColor 可选颜色
type WizardColor struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}

// CustomDesign 定制设计草稿，不落库
type CustomDesign struct {
	SelectedColor  string   `json:"selectedColor"`
	SelectedScents []string `json:"selectedScents"`
	Title          string   `json:"title"`
	UploadedImage  string   `json:"uploadedImage,omitempty"`
	LogoSize       string   `json:"logoSize"`
}

// WizardOptions 向导约束
type WizardOptions struct {
	Colors       []WizardColor
	Scents       []string
	MaxScents    int
	MaxTitleLen  int
	LogoSizeFees map[string]models.Money
}

// Wizard 线性定制向导：颜色 → 香味 → 标签 → 预览，仅支持 Next/Back
type Wizard struct {
	step   WizardStep
	opts   WizardOptions
	design CustomDesign
}

// NewWizard 创建向导，初始位于颜色步骤
func NewWizard(opts WizardOptions) *Wizard {
	if opts.MaxScents <= 0 {
		opts.MaxScents = 3
	}
	if len(opts.LogoSizeFees) == 0 {
		opts.LogoSizeFees = DefaultLogoSizeFees()
	}
	return &Wizard{
		step:   WizardStepColor,
		opts:   opts,
		design: CustomDesign{SelectedScents: []string{}, LogoSize: constants.LogoSizeMedium},
	}
}

// Step 当前步骤
func (w *Wizard) Step() WizardStep {
	return w.step
}

// Design 当前设计副本
func (w *Wizard) Design() CustomDesign {
	design := w.design
	design.SelectedScents = append([]string{}, w.design.SelectedScents...)
	return design
}

// SelectColor 单选颜色，接受色值或名称，保存色值
func (w *Wizard) SelectColor(value string) error {
	if w.step != WizardStepColor {
		return ErrWizardInvalidStep
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrWizardColorRequired
	}
	hex, _ := NormalizeHexCode(value)
	for _, color := range w.opts.Colors {
		if (hex != "" && strings.EqualFold(color.HexCode, hex)) || strings.EqualFold(color.Name, value) {
			w.design.SelectedColor = color.HexCode
			return nil
		}
	}
	return ErrWizardColorNotAllowed
}

// ToggleScent 切换香味；已达上限时新增无效果且不报错
func (w *Wizard) ToggleScent(name string) error {
	if w.step != WizardStepScent {
		return ErrWizardInvalidStep
	}
	scent, ok := w.matchScent(name)
	if !ok {
		return ErrWizardScentInvalid
	}
	for i, selected := range w.design.SelectedScents {
		if selected == scent {
			w.design.SelectedScents = append(w.design.SelectedScents[:i], w.design.SelectedScents[i+1:]...)
			return nil
		}
	}
	if len(w.design.SelectedScents) >= w.opts.MaxScents {
		return nil
	}
	w.design.SelectedScents = append(w.design.SelectedScents, scent)
	return nil
}

// IsScentSelected 香味是否已选
func (w *Wizard) IsScentSelected(name string) bool {
	for _, selected := range w.design.SelectedScents {
		if strings.EqualFold(selected, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

// SetLabel 设置标签文字、上传图片与 logo 尺寸（默认 M）
func (w *Wizard) SetLabel(title, uploadedImage, logoSize string) error {
	if w.step != WizardStepLabel {
		return ErrWizardInvalidStep
	}
	title = strings.TrimSpace(title)
	if w.opts.MaxTitleLen > 0 && utf8.RuneCountInString(title) > w.opts.MaxTitleLen {
		return ErrWizardTitleTooLong
	}
	size, err := w.normalizeLogoSize(logoSize)
	if err != nil {
		return err
	}
	w.design.Title = title
	w.design.UploadedImage = strings.TrimSpace(uploadedImage)
	w.design.LogoSize = size
	return nil
}

// Next 前进一步，当前步骤必须完成
func (w *Wizard) Next() error {
	switch w.step {
	case WizardStepColor:
		if w.design.SelectedColor == "" {
			return ErrWizardColorRequired
		}
	case WizardStepScent:
		if len(w.design.SelectedScents) == 0 {
			return ErrWizardScentRequired
		}
	case WizardStepLabel:
		if w.design.Title == "" {
			return ErrWizardTitleRequired
		}
	default:
		return ErrWizardInvalidStep
	}
	w.step++
	return nil
}

// Back 后退一步，已选内容保留
func (w *Wizard) Back() error {
	if w.step == WizardStepColor {
		return ErrWizardInvalidStep
	}
	w.step--
	return nil
}

// LogoFee 当前 logo 尺寸附加费
func (w *Wizard) LogoFee() models.Money {
	return w.opts.LogoSizeFees[w.design.LogoSize]
}

// Submit 在预览步骤确认后生成购物车定制行
func (w *Wizard) Submit(product *models.Product, quantity int, approved bool) (models.CartItem, error) {
	if w.step != WizardStepPreview {
		return models.CartItem{}, ErrWizardInvalidStep
	}
	if !approved {
		return models.CartItem{}, ErrWizardApprovalRequired
	}
	if product == nil || !product.IsCustomizable {
		return models.CartItem{}, ErrProductNotCustomizable
	}
	if quantity < 1 {
		return models.CartItem{}, ErrQuantityBelowMinimum
	}

	design := w.Design()
	quote := ComputeCustomPrice(product.SalePrice, w.LogoFee(), quantity)
	quote.LogoSize = design.LogoSize
	return models.CartItem{
		ProductID:      product.ID,
		Name:           product.Name,
		ThumbnailURL:   firstNonEmpty(design.UploadedImage, product.ThumbnailURL),
		Quantity:       quantity,
		SelectedColors: []string{design.SelectedColor},
		OriginalPrice:  product.OriginalPrice.Plus(quote.LogoFee),
		SalePrice:      quote.UnitPrice,
		Customization: &models.CartCustomization{
			SelectedColor:  design.SelectedColor,
			SelectedScents: design.SelectedScents,
			Title:          design.Title,
			UploadedImage:  design.UploadedImage,
			LogoSize:       design.LogoSize,
			BasePrice:      quote.BasePrice,
			LogoFee:        quote.LogoFee,
		},
	}, nil
}

func (w *Wizard) matchScent(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, scent := range w.opts.Scents {
		if strings.EqualFold(scent, name) {
			return scent, true
		}
	}
	return "", false
}

func (w *Wizard) normalizeLogoSize(raw string) (string, error) {
	size := strings.ToUpper(strings.TrimSpace(raw))
	if size == "" {
		size = constants.LogoSizeMedium
	}
	if _, ok := w.opts.LogoSizeFees[size]; !ok {
		return "", ErrWizardLogoSizeInvalid
	}
	return size, nil
}

// ReplayDesign 按向导步骤重放设计，用于服务端校验提交的草稿
func ReplayDesign(opts WizardOptions, design CustomDesign) (*Wizard, error) {
	w := NewWizard(opts)
	if err := w.SelectColor(design.SelectedColor); err != nil {
		return nil, err
	}
	if err := w.Next(); err != nil {
		return nil, err
	}
	for _, scent := range design.SelectedScents {
		if w.IsScentSelected(scent) {
			continue
		}
		if len(w.design.SelectedScents) >= w.opts.MaxScents {
			return nil, ErrWizardScentLimit
		}
		if err := w.ToggleScent(scent); err != nil {
			return nil, err
		}
	}
	if err := w.Next(); err != nil {
		return nil, err
	}
	if err := w.SetLabel(design.Title, design.UploadedImage, design.LogoSize); err != nil {
		return nil, err
	}
	if err := w.Next(); err != nil {
		return nil, err
	}
	return w, nil
}

// PriceQuote 定制报价
type PriceQuote struct {
	LogoSize   string       `json:"logoSize,omitempty"`
	Quantity   int          `json:"quantity"`
	BasePrice  models.Money `json:"basePrice"`
	LogoFee    models.Money `json:"logoFee"`
	UnitPrice  models.Money `json:"unitPrice"`
	TotalPrice models.Money `json:"totalPrice"`
}

// ComputeCustomPrice 单价 = 基础价 + logo 附加费，总价 = 单价 × 数量
func ComputeCustomPrice(basePrice, logoFee models.Money, quantity int) PriceQuote {
	unit := basePrice.Plus(logoFee)
	return PriceQuote{
		Quantity:   quantity,
		BasePrice:  basePrice,
		LogoFee:    logoFee,
		UnitPrice:  unit,
		TotalPrice: unit.Times(quantity),
	}
}

// DefaultLogoSizeFees 默认 logo 附加费：M 0，L 80000
func DefaultLogoSizeFees() map[string]models.Money {
	return map[string]models.Money{
		constants.LogoSizeMedium: models.NewMoney(0),
		constants.LogoSizeLarge:  models.NewMoney(80000),
	}
}

// FallbackWizardColors 颜色目录不可用时的静态颜色
func FallbackWizardColors() []WizardColor {
	return []WizardColor{
		{Name: "Trắng ngà", HexCode: "#FFFFF0"},
		{Name: "Hồng phấn", HexCode: "#F8C8DC"},
		{Name: "Xanh bạc hà", HexCode: "#98FF98"},
		{Name: "Vàng nghệ", HexCode: "#E3A857"},
		{Name: "Tím oải hương", HexCode: "#B57EDC"},
		{Name: "Xám khói", HexCode: "#848884"},
	}
}

// FallbackWizardScents 香味目录为空时的静态香味
func FallbackWizardScents() []string {
	return []string{"Oải hương", "Vani", "Quế", "Cam ngọt", "Gỗ đàn hương", "Trà xanh"}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
