// Package reachability implements the reachability & VTI allocator (C6):
// it marks functions used, propagates that mark through override chains,
// lazily assigns virtual-table indices so every implementation of the same
// virtual method family shares one slot, and drains reachable functions
// through a compilation queue into a linking table. Grounded on
// EmojicodeCompiler::Function's used()/assignVti() bookkeeping.
package reachability

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// Provider is the dense-packing VTI allocator for one virtual method
// family (an instance-method, initializer, or type-method family on a
// single Class/ValueType/Enum/Protocol, per the data model). It
// implements typesys.VTIProvider so a Function can hold a reference to it
// without pkg/typesys importing this package.
type Provider struct {
	next int
	used int
}

// NewProvider creates a Provider starting allocation at zero.
func NewProvider() *Provider {
	return &Provider{}
}

// Next returns the next unused index for this method family.
func (p *Provider) Next() int {
	n := p.next
	p.next++
	return n
}

// NotifyUsed records that one more consumer of this family is used, for
// dense vtable sizing.
func (p *Provider) NotifyUsed() {
	p.used++
}

// UsedCount returns how many consumers have called NotifyUsed.
func (p *Provider) UsedCount() int {
	return p.used
}

var _ typesys.VTIProvider = (*Provider)(nil)
