package lexicon

// defaultGenusSuffixes closes the genus word. The "yx", "ix" and "ax" endings
// read well only after a vowel-final stem.
var defaultGenusSuffixes = []string{
	"us", "os", "es", "is", "a", "e", "as", "um", "on", "ma",
	"er", "or", "en", "yx", "ix", "ax",
}

// defaultSpeciesDescriptors holds the epithets. Category-bound descriptors are
// only paired with prefixes of the same category; AnyCategory ones fit all.
var defaultSpeciesDescriptors = []SpeciesDescriptor{
	// Size
	{"robustus", For(Size)},
	{"validus", For(Size)},
	{"gracilis", For(Size)},
	{"tenuis", For(Size)},
	{"crassus", For(Size)},
	{"densus", For(Size)},
	{"solidus", For(Size)},
	{"pinguis", For(Size)},
	{"obesus", For(Size)},
	{"macilentus", For(Size)},

	// Colour
	{"pallidus", For(Colour)},
	{"obscurus", For(Colour)},
	{"lucidus", For(Colour)},
	{"nitidus", For(Colour)},
	{"opacus", For(Colour)},
	{"maculatus", For(Colour)},
	{"striatus", For(Colour)},
	{"variegatus", For(Colour)},
	{"pictus", For(Colour)},
	{"tinctus", For(Colour)},

	// Environment
	{"humidus", For(Environment)},
	{"siccus", For(Environment)},
	{"frigidus", For(Environment)},
	{"calidus", For(Environment)},
	{"umbratus", For(Environment)},
	{"apricus", For(Environment)},
	{"ventosus", For(Environment)},
	{"pluvialis", For(Environment)},
	{"nivalis", For(Environment)},
	{"rupicola", For(Environment)},

	// Time
	{"temporalis", For(Time)},
	{"aeternus", For(Time)},
	{"diurnus", For(Time)},
	{"nocturnus", For(Time)},
	{"matutinus", For(Time)},
	{"vespertinus", For(Time)},
	{"vernalis", For(Time)},
	{"aestivus", For(Time)},
	{"autumnalis", For(Time)},
	{"hiemalis", For(Time)},

	// Position
	{"medianus", For(Position)},
	{"lateralis", For(Position)},
	{"centralis", For(Position)},
	{"periphericus", For(Position)},
	{"extremus", For(Position)},
	{"medius", For(Position)},
	{"imus", For(Position)},
	{"summus", For(Position)},

	// Number
	{"aggregatus", For(Number)},
	{"dispersus", For(Number)},
	{"confertus", For(Number)},
	{"sparsus", For(Number)},
	{"copiosus", For(Number)},
	{"solitarius", For(Number)},
	{"gregarius", For(Number)},
	{"colonialis", For(Number)},

	// Form
	{"regularis", For(Form)},
	{"irregularis", For(Form)},
	{"symmetricus", For(Form)},
	{"asymmetricus", For(Form)},
	{"compressus", For(Form)},
	{"depressus", For(Form)},
	{"inflatus", For(Form)},
	{"contortus", For(Form)},
	{"flexuosus", For(Form)},
	{"undulatus", For(Form)},

	// Quality
	{"perfectus", For(Quality)},
	{"imperfectus", For(Quality)},
	{"completus", For(Quality)},
	{"incompletus", For(Quality)},
	{"verus", For(Quality)},
	{"falsus", For(Quality)},
	{"spurius", For(Quality)},
	{"hybridus", For(Quality)},

	// Any
	{"alpinus", AnyCategory},
	{"maritimus", AnyCategory},
	{"montanus", AnyCategory},
	{"campestris", AnyCategory},
	{"sylvaticus", AnyCategory},
	{"urbanus", AnyCategory},
	{"borealis", AnyCategory},
	{"australis", AnyCategory},
	{"orientalis", AnyCategory},
	{"occidentalis", AnyCategory},
	{"insularis", AnyCategory},
	{"rupestris", AnyCategory},
	{"pratensis", AnyCategory},
	{"paludosus", AnyCategory},
	{"lacustris", AnyCategory},
	{"fluvialis", AnyCategory},
	{"riparius", AnyCategory},
	{"terrestris", AnyCategory},
	{"arenarius", AnyCategory},
	{"saxatilis", AnyCategory},
	{"elegans", AnyCategory},
	{"formosus", AnyCategory},
	{"pulcher", AnyCategory},
	{"ornatus", AnyCategory},
	{"decorus", AnyCategory},
	{"venustus", AnyCategory},
	{"spectabilis", AnyCategory},
	{"insignis", AnyCategory},
	{"eximius", AnyCategory},
	{"admirabilis", AnyCategory},
	{"mirabilis", AnyCategory},
	{"horridus", AnyCategory},
	{"deformis", AnyCategory},
	{"monstrosus", AnyCategory},
	{"velox", AnyCategory},
	{"agilis", AnyCategory},
	{"tardus", AnyCategory},
	{"quietus", AnyCategory},
	{"errans", AnyCategory},
	{"vagans", AnyCategory},
	{"migrans", AnyCategory},
	{"sedentarius", AnyCategory},
	{"pugnax", AnyCategory},
	{"timidus", AnyCategory},
	{"audax", AnyCategory},
	{"ferox", AnyCategory},
	{"vulgaris", AnyCategory},
	{"communis", AnyCategory},
	{"rarus", AnyCategory},
	{"frequens", AnyCategory},
	{"abundans", AnyCategory},
	{"parasiticus", AnyCategory},
	{"symbioticus", AnyCategory},
	{"saprophyticus", AnyCategory},
	{"epiphyticus", AnyCategory},
	{"domesticus", AnyCategory},
	{"ferus", AnyCategory},
	{"cultivatus", AnyCategory},
	{"major", AnyCategory},
	{"minor", AnyCategory},
	{"intermedius", AnyCategory},
	{"paradoxus", AnyCategory},
	{"insolitus", AnyCategory},
	{"curiosus", AnyCategory},
	{"dubius", AnyCategory},
	{"ambiguus", AnyCategory},
	{"incertus", AnyCategory},
}
