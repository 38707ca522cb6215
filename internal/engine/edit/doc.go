// Package edit provides the units of text mutation: Change, ChangeSet, and
// Transaction.
//
// A Change replaces the byte range [Start, End) with Text. Changes in a
// ChangeSet are applied in order, and each change's offsets refer to the
// text as left by the changes before it.
//
// Undo needs the text a change removed. That pre-image is captured before
// the change is applied (ChangeSet.Capture), or supplied up front with
// DeleteText and ReplaceText, so an inverse never reads post-mutation
// text:
//
//	cs, err := edit.ChangeSet{edit.Replace(6, 11, "Forge")}.Capture(r)
//	if err != nil {
//		return err
//	}
//	tx := edit.NewTransaction(cs...)
//	after, _ := tx.Apply(r)
//	undo := tx.Invert(r)
//	before, _ := undo.Apply(after) // same text as r
package edit
