package lexicon

// defaultPrefixes holds the genus-leading morphemes, grouped by category.
// Greek prefixes link with "o", Latin prefixes with "i".
var defaultPrefixes = []Morpheme{
	// Size
	{"Macro", Greek, Size},
	{"Micro", Greek, Size},
	{"Mega", Greek, Size},
	{"Mini", Latin, Size},
	{"Magni", Latin, Size},
	{"Parvi", Latin, Size},
	{"Maxi", Latin, Size},
	{"Grandi", Latin, Size},
	{"Brachy", Greek, Size},
	{"Lepto", Greek, Size},
	{"Longi", Latin, Size},
	{"Brevi", Latin, Size},
	{"Lati", Latin, Size},
	{"Angusti", Latin, Size},
	{"Alti", Latin, Size},
	{"Bathy", Greek, Size},

	// Colour
	{"Leuco", Greek, Colour},
	{"Melano", Greek, Colour},
	{"Xantho", Greek, Colour},
	{"Chloro", Greek, Colour},
	{"Rhodo", Greek, Colour},
	{"Cyano", Greek, Colour},
	{"Porphyro", Greek, Colour},
	{"Albo", Latin, Colour},
	{"Nigri", Latin, Colour},
	{"Rubi", Latin, Colour},
	{"Flavi", Latin, Colour},
	{"Fulvi", Latin, Colour},
	{"Griseo", Latin, Colour},
	{"Roseo", Latin, Colour},
	{"Luteo", Latin, Colour},
	{"Argenti", Latin, Colour},
	{"Auri", Latin, Colour},
	{"Ferru", Latin, Colour},

	// Environment
	{"Hydro", Greek, Environment},
	{"Pyro", Greek, Environment},
	{"Cryo", Greek, Environment},
	{"Geo", Greek, Environment},
	{"Aero", Greek, Environment},
	{"Litho", Greek, Environment},
	{"Thermo", Greek, Environment},
	{"Photo", Greek, Environment},
	{"Hygro", Greek, Environment},
	{"Xero", Greek, Environment},
	{"Halo", Greek, Environment},
	{"Psammo", Greek, Environment},
	{"Aqu", Latin, Environment},
	{"Mari", Latin, Environment},
	{"Monti", Latin, Environment},
	{"Silvi", Latin, Environment},
	{"Glaci", Latin, Environment},
	{"Petri", Latin, Environment},
	{"Litori", Latin, Environment},
	{"Nivi", Latin, Environment},

	// Time
	{"Neo", Greek, Time},
	{"Paleo", Greek, Time},
	{"Archaeo", Greek, Time},
	{"Chrono", Greek, Time},
	{"Proto", Greek, Time},
	{"Eo", Greek, Time},
	{"Meso", Greek, Time},
	{"Ceno", Greek, Time},
	{"Novi", Latin, Time},
	{"Anti", Latin, Time},
	{"Primi", Latin, Time},

	// Position
	{"Endo", Greek, Position},
	{"Ecto", Greek, Position},
	{"Epi", Greek, Position},
	{"Hypo", Greek, Position},
	{"Hyper", Greek, Position},
	{"Peri", Greek, Position},
	{"Para", Greek, Position},
	{"Meta", Greek, Position},
	{"Ana", Greek, Position},
	{"Cata", Greek, Position},
	{"Amphi", Greek, Position},
	{"Super", Latin, Position},
	{"Sub", Latin, Position},
	{"Trans", Latin, Position},
	{"Inter", Latin, Position},
	{"Infra", Latin, Position},
	{"Ultra", Latin, Position},
	{"Circum", Latin, Position},

	// Number
	{"Mono", Greek, Number},
	{"Di", Greek, Number},
	{"Tri", Greek, Number},
	{"Tetra", Greek, Number},
	{"Penta", Greek, Number},
	{"Hexa", Greek, Number},
	{"Hepta", Greek, Number},
	{"Octo", Greek, Number},
	{"Ennea", Greek, Number},
	{"Deca", Greek, Number},
	{"Poly", Greek, Number},
	{"Oligo", Greek, Number},
	{"Diplo", Greek, Number},
	{"Uni", Latin, Number},
	{"Bi", Latin, Number},
	{"Quadri", Latin, Number},
	{"Multi", Latin, Number},
	{"Pluri", Latin, Number},
	{"Semi", Latin, Number},
	{"Pauci", Latin, Number},

	// Form
	{"Morpho", Greek, Form},
	{"Platy", Greek, Form},
	{"Strepto", Greek, Form},
	{"Cyclo", Greek, Form},
	{"Spheno", Greek, Form},
	{"Sphaero", Greek, Form},
	{"Sclero", Greek, Form},
	{"Trachy", Greek, Form},
	{"Lopho", Greek, Form},
	{"Ortho", Greek, Form},
	{"Schizo", Greek, Form},
	{"Holo", Greek, Form},
	{"Stereo", Greek, Form},
	{"Stylo", Greek, Form},
	{"Plani", Latin, Form},
	{"Curvi", Latin, Form},
	{"Recti", Latin, Form},
	{"Spiri", Latin, Form},
	{"Globi", Latin, Form},
	{"Squami", Latin, Form},
	{"Stelli", Latin, Form},
	{"Rhombi", Latin, Form},

	// Quality
	{"Crypto", Greek, Quality},
	{"Pseudo", Greek, Quality},
	{"Eu", Greek, Quality},
	{"Hetero", Greek, Quality},
	{"Homo", Greek, Quality},
	{"Iso", Greek, Quality},
	{"Aniso", Greek, Quality},
	{"Allo", Greek, Quality},
	{"Auto", Greek, Quality},
	{"Syn", Greek, Quality},
	{"Apo", Greek, Quality},
	{"Gymno", Greek, Quality},
	{"Hapto", Greek, Quality},
	{"Acantho", Greek, Quality},
	{"Actino", Greek, Quality},
	{"Tachy", Greek, Quality},
	{"Brady", Greek, Quality},
	{"Steno", Greek, Quality},
	{"Eury", Greek, Quality},
	{"Simpli", Latin, Quality},
	{"Vari", Latin, Quality},
	{"Vermi", Latin, Quality},
	{"Serri", Latin, Quality},
	{"Spini", Latin, Quality},
	{"Totu", Latin, Quality},
}
