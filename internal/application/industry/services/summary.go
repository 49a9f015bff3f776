package services

import (
	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// MaterialLine is one priced entry of a material set
type MaterialLine struct {
	Item      shared.Item
	Amount    int64
	Market    market.Market
	HasMarket bool
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Summary is a read-only snapshot of a task's materials and economics
type Summary struct {
	Kind         industry.Kind
	Duration     int
	Produced     []MaterialLine
	Required     []MaterialLine
	Income       decimal.Decimal
	Expense      decimal.Decimal
	ExtraExpense decimal.Decimal
	Profit       decimal.Decimal
}

// Summarize captures the current material set and prices of task
func Summarize(task industry.Task) Summary {
	return Summary{
		Kind:         task.Kind(),
		Duration:     task.Duration(),
		Produced:     materialLines(task, task.ProducedMaterials()),
		Required:     materialLines(task, task.RequiredMaterials()),
		Income:       task.Income(),
		Expense:      task.Expense(),
		ExtraExpense: task.ExtraExpense(),
		Profit:       task.Profit(),
	}
}

func materialLines(task industry.Task, stacks []shared.ItemStack) []MaterialLine {
	lines := make([]MaterialLine, 0, len(stacks))
	for _, s := range stacks {
		m, ok := task.MaterialMarket(s.Item)
		lines = append(lines, MaterialLine{
			Item:      s.Item,
			Amount:    s.Amount,
			Market:    m,
			HasMarket: ok,
			UnitPrice: task.MaterialUnitPrice(s.Item),
			Total:     task.MaterialPrice(s),
		})
	}
	return lines
}

// Summarize captures the current material set and prices of task
func (s *TaskService) Summarize(task industry.Task) Summary {
	return Summarize(task)
}
