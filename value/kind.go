package value

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindScalar
	KindMap
	KindSeq
	KindAssoc
	KindRecord // adapter-provided record shape, see Enumerable

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsContainer reports whether values of this kind have children.
func (k KindEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case KindMap, KindSeq, KindAssoc, KindRecord:
		return true
	}
}

// IsMapLike reports whether the kind carries explicit keys per child.
func (k KindEnum) IsMapLike() bool {
	switch k {
	default:
		return false
	case KindMap, KindAssoc:
		return true
	}
}
