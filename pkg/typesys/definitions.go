package typesys

// VTIProvider is the narrow interface TypeDefinition and Function need
// against the allocator that actually owns dense VTI assignment
// (pkg/reachability.Provider implements this). Keeping the interface here
// rather than depending on pkg/reachability lets C1's data model own the
// field without C6 needing to be imported by every caller that only wants
// to build Types and Functions.
type VTIProvider interface {
	// Next returns the next unused index for this method family.
	Next() int
	// NotifyUsed records that one more consumer of this family is used,
	// for dense vtable sizing.
	NotifyUsed()
	// UsedCount returns how many consumers have called NotifyUsed.
	UsedCount() int
}

// TypeDefinition is the non-owning link a named Type carries back to the
// entity that defines it. Definitions themselves are owned by a Package;
// a Type never owns its TypeDefinition.
type TypeDefinition interface {
	// Name is the definition's declared name (as an emoji glyph sequence).
	Name() string
	// Pkg returns the owning package.
	Pkg() *Package
	// GenericParameterCount is the number of generic slots this
	// definition declares; Type.GenericVariableIndex() is meaningful only in
	// [0, GenericParameterCount).
	GenericParameterCount() int
	// InstanceMethodProvider is the VTIProvider shared by every
	// instance-method family declared (or overridden) on this definition.
	InstanceMethodProvider() VTIProvider
	// GenericParameterBound returns the upper-bound constraint type
	// declared for generic slot index, used by the generic resolver's
	// super-and-constraints mode. Defaults to Something when unset.
	GenericParameterBound(index int) Type
}

// baseDefinition factors the fields shared by every TypeDefinition kind.
type baseDefinition struct {
	name               string
	pkg                *Package
	genericParams      int
	genericBounds      []Type
	instanceMethodProv VTIProvider
	initializerProv    VTIProvider
	typeMethodProv     VTIProvider
}

func (b *baseDefinition) Name() string                        { return b.name }
func (b *baseDefinition) Pkg() *Package                        { return b.pkg }
func (b *baseDefinition) GenericParameterCount() int           { return b.genericParams }
func (b *baseDefinition) InstanceMethodProvider() VTIProvider  { return b.instanceMethodProv }
func (b *baseDefinition) InitializerProvider() VTIProvider     { return b.initializerProv }
func (b *baseDefinition) TypeMethodProvider() VTIProvider      { return b.typeMethodProv }

// GenericParameterBound returns the declared upper bound for slot index,
// or Something(false) if none was set via SetGenericParameterBound.
func (b *baseDefinition) GenericParameterBound(index int) Type {
	if index >= 0 && index < len(b.genericBounds) {
		return b.genericBounds[index]
	}
	return Something(false)
}

// SetGenericParameterBound records the upper-bound constraint type for
// generic slot index, growing the bound table as needed.
func (b *baseDefinition) SetGenericParameterBound(index int, bound Type) {
	for len(b.genericBounds) <= index {
		b.genericBounds = append(b.genericBounds, Something(false))
	}
	b.genericBounds[index] = bound
}

// Class is a reference-type definition with single inheritance.
type Class struct {
	baseDefinition
	Super      *Class
	Subclasses []*Class
	// Conforms is the list of protocol Types (with their own generic
	// arguments resolved against this class, where applicable) that c
	// declares conformance to.
	Conforms []Type
	// BoxedByDefault marks classes (vanishingly rare, e.g. a runtime
	// bridging type) that must be boxed even though ordinary class
	// instances are Scalar; see storage classifier rule 3.
	BoxedByDefault bool
}

// NewClass creates a Class definition owned by pkg.
func NewClass(name string, pkg *Package, genericParams int, super *Class, provs VTIProviderSet) *Class {
	c := &Class{
		baseDefinition: baseDefinition{
			name: name, pkg: pkg, genericParams: genericParams,
			instanceMethodProv: provs.Instance, initializerProv: provs.Init, typeMethodProv: provs.Type,
		},
		Super: super,
	}
	if super != nil {
		super.Subclasses = append(super.Subclasses, c)
	}
	return c
}

// IsSubclassOf reports whether c is to, or a (possibly transitive)
// subclass of to.
func (c *Class) IsSubclassOf(to *Class) bool {
	for cur := c; cur != nil; cur = cur.Super {
		if cur == to {
			return true
		}
	}
	return false
}

// ConformsTo reports whether c (or a superclass) declares conformance to p.
func (c *Class) ConformsTo(p *Protocol) bool {
	_, ok := c.ConformedType(p)
	return ok
}

// ConformedType returns the (possibly generic-specialized) protocol Type c
// declares conformance to, searching c and its superclasses.
func (c *Class) ConformedType(p *Protocol) (Type, bool) {
	for cur := c; cur != nil; cur = cur.Super {
		for _, q := range cur.Conforms {
			if q.TypeDefinition() == p {
				return q, true
			}
		}
	}
	return Type{}, false
}

// Protocol is a structural interface: a set of required method signatures.
type Protocol struct {
	baseDefinition
	// RequiredMethods names the methods an implementer must provide;
	// populated by the package loader (out of scope here). pkg/compat does
	// not consult it: its conformance check reads the implementer's
	// declared Conforms list only.
	RequiredMethods []string
}

// NewProtocol creates a Protocol definition owned by pkg.
func NewProtocol(name string, pkg *Package, genericParams int, prov VTIProvider) *Protocol {
	return &Protocol{baseDefinition: baseDefinition{name: name, pkg: pkg, genericParams: genericParams, instanceMethodProv: prov}}
}

// ValueType is a named, non-enum value type (struct-like, copied by value).
type ValueType struct {
	baseDefinition
	Conforms   []Type
	FieldWords int // payload size in machine words, used by the storage classifier
}

// NewValueType creates a ValueType definition owned by pkg.
func NewValueType(name string, pkg *Package, genericParams, fieldWords int, provs VTIProviderSet) *ValueType {
	return &ValueType{
		baseDefinition: baseDefinition{name: name, pkg: pkg, genericParams: genericParams,
			instanceMethodProv: provs.Instance, initializerProv: provs.Init, typeMethodProv: provs.Type},
		FieldWords: fieldWords,
	}
}

// ConformsTo reports whether v declares conformance to p.
func (v *ValueType) ConformsTo(p *Protocol) bool {
	_, ok := v.ConformedType(p)
	return ok
}

// ConformedType returns the (possibly generic-specialized) protocol Type v
// declares conformance to.
func (v *ValueType) ConformedType(p *Protocol) (Type, bool) {
	for _, q := range v.Conforms {
		if q.TypeDefinition() == p {
			return q, true
		}
	}
	return Type{}, false
}

// Enum is a named value-type enumeration; its payload is always a single
// discriminant word unless it carries associated values, recorded here as
// FieldWords (0 means "plain enum", a single machine word).
type Enum struct {
	baseDefinition
	Conforms   []Type
	FieldWords int
}

// NewEnum creates an Enum definition owned by pkg.
func NewEnum(name string, pkg *Package, fieldWords int, provs VTIProviderSet) *Enum {
	return &Enum{baseDefinition: baseDefinition{name: name, pkg: pkg, instanceMethodProv: provs.Instance,
		initializerProv: provs.Init, typeMethodProv: provs.Type}, FieldWords: fieldWords}
}

// ConformsTo reports whether e declares conformance to p.
func (e *Enum) ConformsTo(p *Protocol) bool {
	_, ok := e.ConformedType(p)
	return ok
}

// ConformedType returns the (possibly generic-specialized) protocol Type e
// declares conformance to.
func (e *Enum) ConformedType(p *Protocol) (Type, bool) {
	for _, q := range e.Conforms {
		if q.TypeDefinition() == p {
			return q, true
		}
	}
	return Type{}, false
}

// Extension attaches additional members to an existing TypeDefinition
// without owning it.
type Extension struct {
	baseDefinition
	Extended TypeDefinition
}

// NewExtension creates an Extension of extended, owned by pkg.
func NewExtension(name string, pkg *Package, extended TypeDefinition) *Extension {
	return &Extension{baseDefinition: baseDefinition{name: name, pkg: pkg}, Extended: extended}
}

// VTIProviderSet groups the three independent VTIProviders a
// class/value-type/enum definition owns, per the data model's "initializers
// and type methods have separate providers per definition".
type VTIProviderSet struct {
	Instance VTIProvider
	Init     VTIProvider
	Type     VTIProvider
}

// Package is the application-level context object recommended by the
// design notes in place of module-scope globals: it owns the type
// definitions and top-level functions compiled together, so that a Type's
// "definition reference" and a Function's "owning package" link are both
// non-owning references into one place.
type Package struct {
	PkgName     string
	Definitions map[string]TypeDefinition
	Functions   map[string]*Function
}

// NewPackage creates an empty Package named name.
func NewPackage(name string) *Package {
	return &Package{
		PkgName:     name,
		Definitions: make(map[string]TypeDefinition),
		Functions:   make(map[string]*Function),
	}
}

// Name returns the package's declared name.
func (p *Package) Name() string { return p.PkgName }

// AddDefinition registers def under its own name.
func (p *Package) AddDefinition(def TypeDefinition) {
	p.Definitions[def.Name()] = def
}

// AddFunction registers f under its own name.
func (p *Package) AddFunction(f *Function) {
	p.Functions[f.Name] = f
}
