package lexicon

// defaultRoots holds the genus stems. Entries are lower case; surrounding
// hyphens are tolerated and stripped during assembly.
var defaultRoots = []string{
	// Body and anatomy
	"cephal", "cephala", "soma", "derm", "dont", "gnath", "stoma", "cheil",
	"pod", "pter", "chir", "brachi", "dactyl", "onych", "ophthalm", "rhin",
	"ot", "gloss", "cardi", "hepat", "nephr", "gastr", "enter", "pneum",
	"oste", "chondr", "myel", "neur", "my", "sarc", "hem", "lymph",
	"trich", "lepid", "cerat", "branchi", "caud", "ventr", "dors", "pleur",
	"thorac", "cost", "spondyl", "pyg", "ur", "crani", "mandib", "rostr",
	"pelt", "scut", "cten", "acr", "omm", "blast", "cyt", "plasm",

	// Animals
	"saur", "ichthy", "ornith", "therium", "lophus", "mys", "cyon", "lagus",
	"hippus", "bos", "capr", "ovi", "lup", "ursa", "fel", "vulp",
	"serpen", "ophid", "batrach", "chelon", "crocod", "elaph", "taur", "leon",
	"pard", "tigr", "lemur", "simi", "pithec", "cetus", "phoc", "delphin",
	"carcin", "astac", "gammar", "squill", "medus", "polyp", "spong", "coral",
	"helic", "limac", "ostrac", "mytil", "sepi", "teuth", "nautil", "echin",
	"aster", "ophiur", "crinoid", "scorp", "arachn", "acar", "insect", "coleo",
	"myrmec", "apis", "vesp", "culic", "musc", "papilion", "noct", "blatt",
	"termit", "locust", "grill", "cicad", "formic", "aran", "vermis", "lumbric",

	// Plants and fungi
	"phyll", "anth", "carp", "sperm", "rhiz", "caul", "dendr", "xyl",
	"phyt", "myc", "lichen", "brya", "pterid", "fil", "flor", "foli",
	"radic", "semin", "cortic", "ram", "spin", "petal", "sepal", "stamin",
	"pollen", "bacc", "drup", "gramin", "hordea", "tritic", "rosa", "lili",
	"orchid", "cact", "fagus", "querc", "pinus", "cedr", "abies", "salic",
	"betul", "acer", "ulm", "frax", "laur", "myrt", "olea", "vitis",

	// Matter and elements
	"lith", "petr", "ferr", "aur", "argent", "cupr", "plumb", "stann",
	"carbon", "sulf", "calc", "sil", "magnes", "sod", "kal", "nitr",
	"oxy", "hal", "crystall", "vitr", "ambr", "margar", "gemm", "onyx",
	"ceram", "arg", "pel", "psamm", "cren", "cinn", "fum", "nebul",

	// Elements of nature
	"hydr", "aqu", "pyr", "ign", "aer", "vent", "nephel", "pluvi",
	"niv", "glaci", "chion", "therm", "psychr", "heli", "sol", "lun",
	"selen", "astr", "cosm", "uran", "ge", "terr", "mar", "thalass",
	"pelag", "limn", "potam", "fluvi", "rip", "palud", "hyl", "silv",
	"or", "mont", "lit", "arena", "desert", "steppe", "tundr", "sav",

	// Forms and shapes
	"morph", "schem", "typ", "gon", "cycl", "sphaer", "con", "cylindr",
	"helix", "spir", "stroph", "gyr", "tel", "lamin", "plac", "disc",
	"zon", "fasci", "stri", "macul", "punct", "ocell", "annul", "rhomb",
	"trigon", "quadr", "pentagon", "cub", "pyramid", "fusi", "clav", "falc",

	// Motion and behaviour
	"drom", "bat", "reptil", "natat", "volant", "salt", "cursor", "phag",
	"vor", "troph", "cola", "philus", "phob", "tax", "trop", "kinet",
	"dynam", "sthen", "tach", "ped", "gress", "migr", "err", "vag",

	// Sound, light and sense
	"phon", "echo", "son", "phot", "luc", "lumin", "chrom", "opt",
	"scop", "acous", "tact", "osm", "geus", "aesthes", "mnem", "noe",
	"psych", "phren", "thym", "path", "alg", "therap", "iatr", "pharmac",

	// Abstractions
	"logos", "graph", "gram", "metr", "nom", "gen", "gonia", "tok",
	"bios", "zoon", "anthrop", "demos", "polis", "oikos", "chron", "kair",
	"eid", "idea", "hedon", "ethos", "mythos", "sophia", "techn", "ergon",
	"kratos", "arch", "dox", "phil", "agap", "eros", "nemes", "tyche",
}
