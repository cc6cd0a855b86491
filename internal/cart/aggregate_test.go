package cart

import (
	"testing"

	"storefront-be/internal/catalog"

	"github.com/stretchr/testify/assert"
)

var (
	mouse    = catalog.Product{ID: "p1", Name: "Mouse", Price: 25.99, Image: "mouse.jpg", Stock: 10}
	keyboard = catalog.Product{ID: "p2", Name: "Keyboard", Price: 79.00, Image: "kb.jpg", Stock: 5}
)

func TestAggregate_AddMergesByProductID(t *testing.T) {
	agg := NewAggregate(nil)

	agg.Add(mouse)
	agg.Add(keyboard)
	agg.Add(mouse)
	agg.Add(mouse)

	lines := agg.Lines()
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "p1", lines[0].ProductID)
		assert.Equal(t, 3, lines[0].Quantity)
		assert.Equal(t, "p2", lines[1].ProductID)
		assert.Equal(t, 1, lines[1].Quantity)
	}
}

func TestAggregate_AddPreservesInsertionOrder(t *testing.T) {
	agg := NewAggregate(nil)

	agg.Add(keyboard)
	agg.Add(mouse)
	agg.Add(keyboard)

	lines := agg.Lines()
	assert.Equal(t, "p2", lines[0].ProductID)
	assert.Equal(t, "p1", lines[1].ProductID)
}

func TestAggregate_RemoveAbsentIsNoOp(t *testing.T) {
	agg := NewAggregate(nil)
	agg.Add(mouse)

	agg.Remove("nope")

	assert.Len(t, agg.Lines(), 1)
}

func TestAggregate_SetQuantity(t *testing.T) {
	t.Run("updates in place", func(t *testing.T) {
		agg := NewAggregate(nil)
		agg.Add(mouse)
		agg.Add(keyboard)

		agg.SetQuantity("p1", 7)

		lines := agg.Lines()
		assert.Equal(t, 7, lines[0].Quantity)
		assert.Equal(t, "p1", lines[0].ProductID) // position kept
	})

	t.Run("zero behaves as remove", func(t *testing.T) {
		a := NewAggregate(nil)
		a.Add(mouse)
		a.Add(keyboard)
		a.SetQuantity("p1", 0)

		b := NewAggregate(nil)
		b.Add(mouse)
		b.Add(keyboard)
		b.Remove("p1")

		assert.Equal(t, b.Lines(), a.Lines())
	})

	t.Run("negative behaves as remove", func(t *testing.T) {
		agg := NewAggregate(nil)
		agg.Add(mouse)
		agg.SetQuantity("p1", -3)

		assert.True(t, agg.IsEmpty())
	})
}

func TestAggregate_Total(t *testing.T) {
	agg := NewAggregate(nil)
	agg.Add(mouse)
	agg.Add(mouse)
	agg.Add(keyboard)

	assert.InDelta(t, 25.99*2+79.00, agg.Total(), 1e-9)
}

func TestAggregate_ItemCountVersusLineCount(t *testing.T) {
	agg := NewAggregate(nil)
	agg.Add(mouse)
	agg.Add(mouse)
	agg.Add(keyboard)

	assert.Equal(t, 3, agg.ItemCount())
	assert.Len(t, agg.Lines(), 2)
}

func TestAggregate_LinesReturnsCopy(t *testing.T) {
	agg := NewAggregate(nil)
	agg.Add(mouse)

	lines := agg.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, agg.Lines()[0].Quantity)
}

func TestAggregate_RepeatedAddProperty(t *testing.T) {
	// N adds of the same product yield one line with quantity N.
	agg := NewAggregate(nil)
	const n = 17

	for i := 0; i < n; i++ {
		agg.Add(mouse)
	}

	lines := agg.Lines()
	if assert.Len(t, lines, 1) {
		assert.Equal(t, n, lines[0].Quantity)
	}
}
