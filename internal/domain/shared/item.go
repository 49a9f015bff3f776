package shared

import "fmt"

// Item is a catalog entry that can be produced, consumed or traded
type Item struct {
	ID      int
	Name    string
	GroupID int
}

func (i Item) String() string {
	if i.Name == "" {
		return fmt.Sprintf("#%d", i.ID)
	}
	return fmt.Sprintf("%s (#%d)", i.Name, i.ID)
}

// ItemStack is an item reference plus a signed quantity
type ItemStack struct {
	Item   Item
	Amount int64
}

// NewItemStack creates a stack of amount units of item
func NewItemStack(item Item, amount int64) ItemStack {
	return ItemStack{Item: item, Amount: amount}
}

// Scale returns a copy of the stack with its amount multiplied by factor
func (s ItemStack) Scale(factor int64) ItemStack {
	return ItemStack{Item: s.Item, Amount: s.Amount * factor}
}

func (s ItemStack) String() string {
	return fmt.Sprintf("%d x %s", s.Amount, s.Item)
}
