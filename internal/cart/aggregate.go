package cart

import "storefront-be/internal/catalog"

// Line is a cart entry carrying a display snapshot of the product taken at
// add time. At most one line exists per product id.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Aggregate is the in-progress, unsubmitted selection of products. Lines keep
// insertion order; repeated adds merge into the existing line.
type Aggregate struct {
	lines []Line
}

func NewAggregate(lines []Line) *Aggregate {
	return &Aggregate{lines: lines}
}

// Add merges by product id: existing lines gain quantity 1 in place, new
// products append at the end.
func (a *Aggregate) Add(p catalog.Product) {
	for i := range a.lines {
		if a.lines[i].ProductID == p.ID {
			a.lines[i].Quantity++
			return
		}
	}

	a.lines = append(a.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Remove drops the matching line. Removing an absent product is a no-op.
func (a *Aggregate) Remove(productID string) {
	for i := range a.lines {
		if a.lines[i].ProductID == productID {
			a.lines = append(a.lines[:i], a.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line in place, preserving its position. Quantities
// below 1 remove the line instead.
func (a *Aggregate) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		a.Remove(productID)
		return
	}

	for i := range a.lines {
		if a.lines[i].ProductID == productID {
			a.lines[i].Quantity = quantity
			return
		}
	}
}

// Total accumulates price x quantity without rounding; display rounding
// happens at the presentation boundary only.
func (a *Aggregate) Total() float64 {
	var total float64
	for _, l := range a.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount is the badge count: the sum of quantities, not the line count.
func (a *Aggregate) ItemCount() int {
	var count int
	for _, l := range a.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy so callers cannot bypass the mutation methods.
func (a *Aggregate) Lines() []Line {
	cp := make([]Line, len(a.lines))
	copy(cp, a.lines)
	return cp
}

func (a *Aggregate) IsEmpty() bool {
	return len(a.lines) == 0
}

func (a *Aggregate) Clear() {
	a.lines = nil
}
