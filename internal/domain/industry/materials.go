package industry

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// resolveMaterial turns a catalog material into a stack of amount units.
// Materials whose item the provider does not know are dropped.
func resolveMaterial(p DataProvider, m catalog.Material, amount int64) (shared.ItemStack, bool) {
	if amount <= 0 {
		return shared.ItemStack{}, false
	}
	item, ok := p.Item(m.ItemID)
	if !ok {
		return shared.ItemStack{}, false
	}
	return shared.NewItemStack(item, amount), true
}

// scaleMaterials resolves every material multiplied by factor
func scaleMaterials(p DataProvider, materials []catalog.Material, factor int64) []shared.ItemStack {
	out := make([]shared.ItemStack, 0, len(materials))
	for _, m := range materials {
		if stack, ok := resolveMaterial(p, m, m.Amount*factor); ok {
			out = append(out, stack)
		}
	}
	return out
}
