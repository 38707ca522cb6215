package edit

import (
	"fmt"

	"github.com/dshills/forge/internal/engine/rope"
	"github.com/dshills/forge/internal/engine/selection"
)

// Transaction is an atomic group of changes plus the selection that
// should follow them. A nil Selection means the caller keeps its
// selection, mapped through the changes.
type Transaction struct {
	Changes   ChangeSet
	Selection *selection.Selection
}

// NewTransaction creates a transaction from changes.
func NewTransaction(changes ...Change) Transaction {
	return Transaction{Changes: ChangeSet(changes)}
}

// WithSelection returns the transaction carrying sel.
func (t Transaction) WithSelection(sel selection.Selection) Transaction {
	t.Selection = &sel
	return t
}

// Capture validates the changes against r and records their pre-images.
func (t Transaction) Capture(r rope.Rope) (Transaction, error) {
	cs, err := t.Changes.Capture(r)
	if err != nil {
		return t, err
	}
	t.Changes = cs
	return t, nil
}

// Apply applies every change in order and returns the new text along
// with the carried selection, if any, for the caller to install.
func (t Transaction) Apply(r rope.Rope) (rope.Rope, *selection.Selection) {
	return t.Changes.Apply(r), t.Selection
}

// Invert returns a transaction that undoes t. pre must be the text t was
// applied to; it is only read for changes without a pre-image. The
// inverse carries no selection.
func (t Transaction) Invert(pre rope.Rope) Transaction {
	return Transaction{Changes: t.Changes.Invert(pre)}
}

// Map maps a position through the changes.
func (t Transaction) Map(pos rope.ByteOffset) rope.ByteOffset {
	return t.Changes.MapPosition(pos)
}

// MapSelection maps every range of sel through the changes.
func (t Transaction) MapSelection(sel selection.Selection) selection.Selection {
	return sel.Map(t.Map)
}

// IsEmpty returns true if the transaction modifies no text.
func (t Transaction) IsEmpty() bool {
	return t.Changes.IsEmpty()
}

// Description returns a short summary for history listings.
func (t Transaction) Description() string {
	switch len(t.Changes) {
	case 0:
		return "no changes"
	case 1:
		return t.Changes[0].Kind().String()
	default:
		return fmt.Sprintf("%d changes", len(t.Changes))
	}
}
