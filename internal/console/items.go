package console

import (
	"fmt"
	"strconv"
	"strings"

	"acconsole/pkg/sdk"

	"github.com/google/uuid"
)

const (
	MinItemAmount     = 1
	MaxItemAmount     = 64
	DefaultItemAmount = 1
)

// ItemRow is one editable item of a compensation package. Amount and Lore
// hold raw editor text until Collect parses them.
type ItemRow struct {
	ID         string
	Material   string
	Amount     string
	CustomName string
	Lore       string
}

// ItemEditor keeps item rows in display order. Row labels are positional,
// so removing a row renumbers everything after it.
type ItemEditor struct {
	rows []ItemRow
}

func NewItemEditor(items ...sdk.Item) *ItemEditor {
	e := &ItemEditor{}
	for _, it := range items {
		e.Add(it.Material, strconv.Itoa(it.Amount), it.CustomName, strings.Join(it.Lore, "\n"))
	}
	return e
}

// Add appends a row and returns its id.
func (e *ItemEditor) Add(material, amount, customName, lore string) string {
	id := uuid.NewString()
	e.rows = append(e.rows, ItemRow{
		ID:         id,
		Material:   material,
		Amount:     amount,
		CustomName: customName,
		Lore:       lore,
	})
	return id
}

func (e *ItemEditor) Remove(id string) bool {
	for i, r := range e.rows {
		if r.ID == id {
			e.rows = append(e.rows[:i], e.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Update replaces the editable fields of the row with the given id.
func (e *ItemEditor) Update(row ItemRow) bool {
	for i, r := range e.rows {
		if r.ID == row.ID {
			e.rows[i] = row
			return true
		}
	}
	return false
}

func (e *ItemEditor) Rows() []ItemRow {
	return append([]ItemRow(nil), e.rows...)
}

func (e *ItemEditor) Len() int {
	return len(e.rows)
}

func (e *ItemEditor) Labels() []string {
	labels := make([]string, len(e.rows))
	for i := range e.rows {
		labels[i] = ItemLabel(i)
	}
	return labels
}

func ItemLabel(index int) string {
	return fmt.Sprintf("物品 %d", index+1)
}

// Collect turns the rows into wire items. Rows without a material are
// skipped.
func (e *ItemEditor) Collect() []sdk.Item {
	items := make([]sdk.Item, 0, len(e.rows))
	for _, r := range e.rows {
		material := strings.ToUpper(strings.TrimSpace(r.Material))
		if material == "" {
			continue
		}
		items = append(items, sdk.Item{
			Material:   material,
			Amount:     ParseAmount(r.Amount),
			CustomName: strings.TrimSpace(r.CustomName),
			Lore:       SplitLore(r.Lore),
		})
	}
	return items
}

// ParseAmount falls back to DefaultItemAmount for non-numeric input and
// clamps the result to a single stack.
func ParseAmount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultItemAmount
	}
	if n < MinItemAmount {
		return MinItemAmount
	}
	if n > MaxItemAmount {
		return MaxItemAmount
	}
	return n
}

func SplitLore(s string) []string {
	lore := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lore = append(lore, line)
		}
	}
	return lore
}
