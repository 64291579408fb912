package reachability

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// LinkingTable is the indexed list of exported functions with stable
// indices, set once per function, consumed by a driver assembling the
// final symbol table.
type LinkingTable struct {
	entries []*typesys.Function
}

// NewLinkingTable creates an empty LinkingTable.
func NewLinkingTable() *LinkingTable {
	return &LinkingTable{}
}

// Export assigns f its stable linking-table index if it does not already
// have one, appends it to the table, and returns the index. Calling Export
// twice for the same f is a no-op that returns the existing index (f's own
// Reassign-Provider-style invariant is enforced by
// typesys.Function.SetLinkingTableIndex's caller discipline, not repeated
// here).
func (lt *LinkingTable) Export(f *typesys.Function) int {
	if idx, ok := f.LinkingTableIndex(); ok {
		return idx
	}
	idx := len(lt.entries)
	f.SetLinkingTableIndex(idx)
	lt.entries = append(lt.entries, f)
	return idx
}

// Len returns the number of exported functions.
func (lt *LinkingTable) Len() int { return len(lt.entries) }

// At returns the function holding linking-table index i.
func (lt *LinkingTable) At(i int) *typesys.Function { return lt.entries[i] }
