package industry

import (
	"sort"

	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// netMaterials condenses raw produced and required lists into a disjoint
// material set. Duplicate items are merged, items produced and required in
// equal measure cancel out, and the remainder lands on whichever side its
// signed total falls. Both results are ordered by item ID.
func netMaterials(p DataProvider, rawProduced, rawRequired []shared.ItemStack) (produced, required []shared.ItemStack) {
	totals := make(map[int]int64)
	items := make(map[int]shared.Item)
	var order []int

	accumulate := func(stack shared.ItemStack, sign int64) {
		id := stack.Item.ID
		if _, seen := totals[id]; !seen {
			order = append(order, id)
			items[id] = stack.Item
		}
		totals[id] += sign * stack.Amount
	}
	for _, stack := range rawProduced {
		accumulate(stack, 1)
	}
	for _, stack := range rawRequired {
		accumulate(stack, -1)
	}

	sort.Ints(order)
	produced = make([]shared.ItemStack, 0, len(order))
	required = make([]shared.ItemStack, 0, len(order))
	for _, id := range order {
		amount := totals[id]
		if amount == 0 {
			continue
		}
		item := items[id]
		if resolved, ok := p.Item(id); ok {
			item = resolved
		}
		if amount > 0 {
			produced = append(produced, shared.NewItemStack(item, amount))
		} else {
			required = append(required, shared.NewItemStack(item, -amount))
		}
	}
	return produced, required
}

// updateMaterials recomputes the material set from the variant's raw lists,
// back-fills default markets, publishes the new set and notifies listeners.
// Variants call it whenever an attribute affecting materials changes.
func (c *Core) updateMaterials() {
	produced, required := netMaterials(c.provider, c.self.rawProducedMaterials(), c.self.rawRequiredMaterials())

	for _, stack := range produced {
		c.assignDefaultMarket(stack.Item.ID, c.provider.DefaultProducedMarket)
	}
	for _, stack := range required {
		c.assignDefaultMarket(stack.Item.ID, c.provider.DefaultRequiredMarket)
	}

	c.materials.Store(&materialSet{produced: produced, required: required})
	c.notifyMaterialSetChanged()
}
