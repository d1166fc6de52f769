package lexicon

// Origin is the language a prefix is borrowed from.
type Origin uint8

const (
	Greek Origin = iota
	Latin
)

func (o Origin) String() string {
	switch o {
	case Greek:
		return "greek"
	case Latin:
		return "latin"
	default:
		return "unknown"
	}
}

// Connector returns the thematic vowel used to join morphemes of this origin.
func (o Origin) Connector() string {
	if o == Latin {
		return "i"
	}
	return "o"
}

// Category is the semantic field of a prefix.
type Category uint8

// Categories available for prefixes and descriptor affinities.
const (
	Size Category = iota
	Colour
	Position
	Time
	Number
	Form
	Environment
	Quality

	// NumCategories is the number of defined categories.
	NumCategories = int(Quality) + 1
)

var categoryNames = [NumCategories]string{
	"size", "colour", "position", "time", "number", "form", "environment", "quality",
}

func (c Category) String() string {
	if int(c) < NumCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Affinity restricts a species descriptor to prefixes of one category.
// The zero value is not meaningful; use AnyCategory or For.
type Affinity struct {
	kind     affinityKind
	category Category
}

type affinityKind uint8

const (
	affinityUnset affinityKind = iota
	affinityAny
	affinityOne
)

// AnyCategory matches prefixes of every category.
var AnyCategory = Affinity{kind: affinityAny}

// For returns an affinity bound to a single category.
func For(c Category) Affinity {
	return Affinity{kind: affinityOne, category: c}
}

// Matches reports whether a descriptor with this affinity may follow a prefix
// of category c.
func (a Affinity) Matches(c Category) bool {
	switch a.kind {
	case affinityAny:
		return true
	case affinityOne:
		return a.category == c
	default:
		return false
	}
}

// Category returns the bound category; ok is false for AnyCategory.
func (a Affinity) Category() (Category, bool) {
	return a.category, a.kind == affinityOne
}

func (a Affinity) String() string {
	switch a.kind {
	case affinityAny:
		return "any"
	case affinityOne:
		return a.category.String()
	default:
		return "unset"
	}
}

// Morpheme is a genus prefix tagged with its origin and category.
type Morpheme struct {
	Text     string
	Origin   Origin
	Category Category
}

// SpeciesDescriptor is a species epithet with an optional category binding.
type SpeciesDescriptor struct {
	Text     string
	Affinity Affinity
}
