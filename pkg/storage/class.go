package storage

// Class is the derived (never stored) storage classification of a Type.
type Class int

const (
	// Scalar fits in one machine word or a fixed small record, with no
	// dynamic tag.
	Scalar Class = iota
	// SimpleOptional is a scalar payload plus an in-band presence flag.
	SimpleOptional
	// Box is the uniform heap- or stack-allocated envelope: a type tag
	// plus up to four payload words, with larger payloads stored remotely.
	Box
)

func (c Class) String() string {
	switch c {
	case Scalar:
		return "Scalar"
	case SimpleOptional:
		return "SimpleOptional"
	case Box:
		return "Box"
	default:
		return "Unknown"
	}
}

// kBoxValueSize is the fixed machine-word footprint of a Box envelope.
const kBoxValueSize = 4

// simpleOptionalPayloadLimit is the largest scalar payload (in words) that
// still fits in a SimpleOptional alongside its presence flag.
const simpleOptionalPayloadLimit = 3
