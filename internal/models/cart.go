package models

import "time"

// Cart 会话购物车（保存在 Redis，不落库）
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem 购物车行项目
type CartItem struct {
	ID             string             `json:"id"`
	ProductID      uint               `json:"productId"`
	Name           string             `json:"name"`
	ThumbnailURL   string             `json:"thumbnailUrl"`
	Quantity       int                `json:"quantity"`
	SelectedColors []string           `json:"selectedColors"`
	SelectedSize   string             `json:"selectedSize,omitempty"`
	OriginalPrice  Money              `json:"originalPrice"`
	SalePrice      Money              `json:"salePrice"`
	Customization  *CartCustomization `json:"customization,omitempty"`
}

// CartCustomization 定制商品附带的设计信息
type CartCustomization struct {
	SelectedColor  string   `json:"selectedColor"`
	SelectedScents []string `json:"selectedScents"`
	Title          string   `json:"title"`
	UploadedImage  string   `json:"uploadedImage,omitempty"`
	LogoSize       string   `json:"logoSize"`
	BasePrice      Money    `json:"basePrice"`
	LogoFee        Money    `json:"logoFee"`
}

// LineTotal 行小计 = 售价 × 数量
func (i CartItem) LineTotal() Money {
	return i.SalePrice.Times(i.Quantity)
}

// Total 购物车合计 = Σ 售价 × 数量，不含运费与优惠
func (c *Cart) Total() Money {
	total := NewMoney(0)
	if c == nil {
		return total
	}
	for _, item := range c.Items {
		total = total.Plus(item.LineTotal())
	}
	return total
}

// OriginalTotal 按原价计算的合计
func (c *Cart) OriginalTotal() Money {
	total := NewMoney(0)
	if c == nil {
		return total
	}
	for _, item := range c.Items {
		total = total.Plus(item.OriginalPrice.Times(item.Quantity))
	}
	return total
}

// ItemCount 商品件数
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItem 根据行 ID 查找，返回下标
func (c *Cart) FindItem(id string) int {
	if c == nil {
		return -1
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// ToJSON 转为可落库的 JSON 快照
func (c *CartCustomization) ToJSON() JSON {
	if c == nil {
		return nil
	}
	scents := make([]interface{}, 0, len(c.SelectedScents))
	for _, s := range c.SelectedScents {
		scents = append(scents, s)
	}
	return JSON{
		"selectedColor":  c.SelectedColor,
		"selectedScents": scents,
		"title":          c.Title,
		"uploadedImage":  c.UploadedImage,
		"logoSize":       c.LogoSize,
		"basePrice":      c.BasePrice.IntPart(),
		"logoFee":        c.LogoFee.IntPart(),
	}
}
