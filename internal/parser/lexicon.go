package parser

// Lexicons used by the classifier and facet enhancers. Multi-word entries
// come first so they win over their single-word substrings.

var wineHintWords = []string{
	"wine", "wines", "champagne", "sparkling", "rosé", "rose", "prosecco", "cava",
}

var beverageHintWords = []string{
	"cocktail", "cocktails", "beer", "beers", "drink", "drinks", "beverage",
	"beverages", "spirits", "coffee", "tea", "soft", "juice", "smoothie", "shake",
}

var foodHintWords = []string{
	"starter", "starters", "appetizer", "appetizers", "main", "mains", "entrée",
	"entree", "entrees", "dessert", "desserts", "side", "sides", "salad", "salads",
	"soup", "soups", "pizza", "pasta", "grill", "burger", "burgers", "sandwich",
	"sandwiches", "breakfast", "brunch", "lunch", "dinner", "snack", "snacks",
}

var spiritLexicon = []string{
	"white rum", "dark rum", "spiced rum", "single malt", "london dry gin",
	"vodka", "gin", "rum", "tequila", "mezcal", "whiskey", "whisky", "bourbon",
	"scotch", "brandy", "cognac", "vermouth", "amaretto", "aperol", "campari",
	"triple sec", "liqueur",
}

var beerStyleLexicon = []string{
	"session ipa", "double ipa", "pale ale", "ipa", "lager", "stout", "porter",
	"pilsner", "ale", "wheat beer", "saison", "sour",
}

var servingStyleLexicon = []string{
	"on the rocks", "straight up", "on tap", "neat", "frozen", "draught",
	"draft", "bottled", "iced", "hot",
}

var nonAlcoholicLexicon = []string{
	"non-alcoholic", "non alcoholic", "alcohol-free", "alcohol free",
	"mocktail", "virgin", "0% abv", "0%",
}

var grapeLexicon = []string{
	"cabernet sauvignon", "sauvignon blanc", "pinot noir", "pinot grigio",
	"pinot gris", "chenin blanc", "chardonnay", "merlot", "riesling", "syrah",
	"shiraz", "malbec", "tempranillo", "grenache", "zinfandel", "sangiovese",
	"nebbiolo", "viognier", "gewürztraminer", "gewurztraminer", "albariño",
	"albarino", "verdejo", "gamay", "carmenère", "carmenere",
}

var wineRegionLexicon = []string{
	"napa valley", "barossa valley", "russian river", "willamette valley",
	"bordeaux", "burgundy", "rioja", "tuscany", "chianti", "piedmont",
	"marlborough", "mendoza", "mosel", "rheingau", "champagne", "loire",
	"provence", "rhône", "rhone", "priorat", "stellenbosch", "sonoma",
}

var dishNounLexicon = []string{
	"pizza", "pasta", "risotto", "burger", "steak", "chicken", "salmon", "cod",
	"tuna", "prawn", "prawns", "shrimp", "lamb", "pork", "beef", "duck", "tofu",
	"salad", "soup", "curry", "taco", "tacos", "noodles", "ramen", "gnocchi",
	"ravioli", "lasagna", "sandwich", "wrap", "fries", "dumplings", "cheesecake",
	"brownie", "tiramisu", "sundae", "tart", "pie",
}

var allergenLexicon = []string{
	"peanuts", "peanut", "tree nuts", "nuts", "gluten", "dairy", "shellfish",
	"soy", "soya", "sesame", "mustard", "celery", "lupin", "sulphites",
	"sulfites", "molluscs", "crustaceans", "eggs", "egg", "fish", "wheat", "milk",
}

var dietaryFlagLexicon = []string{
	"vegetarian", "vegan", "gluten-free", "gluten free", "dairy-free",
	"dairy free", "plant-based", "halal", "kosher", "spicy",
}

// dietaryMarkers maps shorthand menu markers like "(v)" to canonical flags.
var dietaryMarkers = map[string]string{
	"(v)":  "vegetarian",
	"(vg)": "vegan",
	"(gf)": "gluten-free",
	"(df)": "dairy-free",
}
