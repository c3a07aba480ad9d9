package shopping

import "strings"

// Category labels. The set is closed: Categorize never returns anything else.
const (
	CategoryVegetables = "Verdura fresca"
	CategoryFruit      = "Frutta"
	CategoryLegumes    = "Legumi"
	CategoryCereals    = "Cereali e derivati"
	CategoryBread      = "Pane e sostituti"
	CategoryDairy      = "Latticini"
	CategoryEggs       = "Uova"
	CategoryFish       = "Pesce"
	CategoryMeat       = "Carne"
	CategoryNuts       = "Semi e frutta secca"
	CategoryPreserves  = "Conserve e sott'olio"
	CategoryHerbs      = "Erbe e spezie"
	CategoryCondiments = "Condimenti"
	CategoryDrinks     = "Bevande"
	CategoryOther      = "Altro"
)

// CategoryOrder is the display order of shopping list buckets.
var CategoryOrder = []string{
	CategoryVegetables,
	CategoryFruit,
	CategoryLegumes,
	CategoryCereals,
	CategoryBread,
	CategoryDairy,
	CategoryEggs,
	CategoryFish,
	CategoryMeat,
	CategoryNuts,
	CategoryPreserves,
	CategoryHerbs,
	CategoryCondiments,
	CategoryDrinks,
	CategoryOther,
}

type categoryRule struct {
	category string
	// keywords are mostly stems, so "cipoll" matches both cipolla and
	// cipolle.
	keywords []string
	// except lists names the rule must leave to a later rule.
	except []string
}

// categoryRules is evaluated top to bottom and the first hit wins, so a rule
// must sit above every rule whose keywords are substrings of its own names
// ("tonno sott'olio" before "tonno", "fagiolin" before "fagiol", "peperoni"
// before "pepe", "pasta all'uovo" before "uovo").
var categoryRules = []categoryRule{
	{category: CategoryPreserves, keywords: []string{
		"sott'olio", "sottolio", "sottacet", "in scatola", "passata",
		"pelati", "concentrato", "conserva", "olive", "capper", "al naturale",
	}},
	{category: CategoryCondiments, keywords: []string{
		"olio", "aceto", "sale", "zucchero", "miele", "maionese", "senape",
		"ketchup", "salsa", "salse", "margarina", "dado", "brodo", "marmellat", "confettur",
	}},
	{category: CategoryDrinks, keywords: []string{
		"acqua", "caffè", "caffe", "tè ", "tisan", "infus", "succo", "succhi", "spremut",
		"vino", "birra", "bevand",
	}},
	{category: CategoryDairy, keywords: []string{
		"latte", "yogurt", "formagg", "parmigiano", "grana padano", "pecorino",
		"ricotta", "mozzarell", "stracchino", "scamorza", "burro", "panna", "kefir",
		"feta", "robiola", "caprino", "emmental", "fontina", "provola", "skyr",
	}},
	{category: CategoryBread, keywords: []string{
		"pane", "pangrattato", "fette biscottate", "cracker", "grissin", "gallett",
		"piadin", "frisell", "taral", "crostin", "focacc", "toast",
	}},
	{category: CategoryCereals, keywords: []string{
		"pasta", "spaghetti", "penne", "fusilli", "tagliatelle", "tagliolini", "riso",
		"farro", "orzo", "avena", "fiocc", "muesli", "quinoa", "cous cous", "couscous",
		"farina", "polenta", "gnocchi", "cereali", "miglio", "grano saraceno", "bulgur",
		"porridge",
	}},
	{category: CategoryEggs, keywords: []string{"uovo", "uova", "albume", "tuorl"}},
	{category: CategoryFish, keywords: []string{
		"pesce", "salmone", "tonno", "merluzz", "orata", "branzino", "spigola",
		"gamber", "sgombro", "alici", "alice", "acciug", "calamar", "polpo", "cozz",
		"vongol", "sogliol", "trota", "baccalà", "platess", "nasello",
	}},
	{category: CategoryMeat, keywords: []string{
		"carne", "pollo", "tacchino", "manzo", "vitello", "maiale", "prosciutto",
		"bresaola", "bistecc", "hamburger", "salsicc", "speck", "fesa", "coniglio",
		"agnello", "arrosto",
	}},
	{category: CategoryNuts, except: []string{"noce moscata"}, keywords: []string{
		"frutta secca", "mandorl", "noce", "noci", "nocciol", "pistacch", "anacard",
		"arachid", "semi", "pinol",
	}},
	{category: CategoryVegetables, except: []string{"erba cipollina"}, keywords: []string{
		"verdur", "ortaggi", "zucchin", "melanzan", "peperoni", "peperone", "pomodor", "insalat",
		"lattuga", "rucola", "spinaci", "carot", "broccol", "cavolfior", "cavol",
		"finocchi", "sedano", "cipoll", "fung", "asparag", "carciof", "zucca", "zucche",
		"bietol", "cetriol", "radicchio", "fagiolin", "patat", "porr", "ravanell", "minestrone",
	}},
	{category: CategoryHerbs, keywords: []string{
		"basilico", "prezzemolo", "rosmarino", "origano", "timo", "salvia", "menta",
		"pepe", "peperoncino", "curcuma", "cannella", "zenzero", "noce moscata",
		"paprika", "curry", "erba cipollina", "aglio", "spezi", "erbe", "cumino", "alloro",
	}},
	{category: CategoryLegumes, keywords: []string{
		"ceci", "cece", "lenticch", "fagiol", "pisell", "fave", "fava", "lupin", "soia",
		"edamame", "hummus", "cicerch", "legumi",
	}},
	{category: CategoryFruit, keywords: []string{
		"frutta", "frutti di bosco", "mela", "mele", "pera", "pere", "banan",
		"aranc", "kiwi", "fragol", "mirtill", "pesca", "pesche",
		"albicocc", "uva", "ananas", "mandarin", "limon", "melone", "anguria",
		"prugn", "cachi", "fico", "fichi", "lampon",
	}},
}

func (r categoryRule) matches(lower string) bool {
	for _, ex := range r.except {
		if strings.Contains(lower, ex) {
			return false
		}
	}
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Categorize maps an ingredient name to one of CategoryOrder using
// case-insensitive keyword matching. Unknown names fall into CategoryOther.
func Categorize(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return CategoryOther
	}
	for _, rule := range categoryRules {
		if rule.matches(lower) {
			return rule.category
		}
	}
	return CategoryOther
}
