package pipeline

// Stopword tables per language. Built once at init, never mutated.

func newStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var stopwordsItalian = newStopwordSet([]string{
	// Articles
	"il", "lo", "la", "i", "gli", "le", "un", "uno", "una", "dei", "degli", "delle",
	// Prepositions
	"di", "a", "da", "in", "con", "su", "per", "tra", "fra", "del", "dello", "della",
	"dall", "dalla", "dal", "dallo", "nel", "nello", "nella", "nei", "negli", "nelle",
	"col", "coi", "sul", "sullo", "sulla", "sui", "sugli", "sulle",
	// Conjunctions
	"e", "o", "ma", "però", "quindi", "perciò", "infatti", "inoltre", "anche", "pure",
	"sia", "oppure", "ovvero", "cioè", "ossia", "mentre", "quando", "se", "come",
	// Pronouns
	"io", "tu", "egli", "ella", "esso", "essa", "noi", "voi", "essi", "esse", "lui", "lei",
	"mi", "ti", "ci", "vi", "si", "me", "te", "loro",
	"mio", "tuo", "suo", "nostro", "vostro", "mia", "tua", "sua", "nostra", "vostra",
	"questo", "questa", "quello", "quella", "questi", "queste", "quelli", "quelle",
	"che", "chi", "cui", "quale", "quali", "quanto", "quanta", "quanti", "quante",
	// Adverbs
	"non", "più", "molto", "poco", "tanto", "troppo", "abbastanza", "piuttosto",
	"ancora", "già", "sempre", "mai", "spesso", "subito", "presto", "tardi", "prima",
	"dopo", "poi", "qui", "qua", "là", "lì", "dove", "dovunque", "ovunque", "altrove",
	"sopra", "sotto", "dentro", "fuori", "davanti", "dietro", "accanto", "insieme",
	"così", "bene", "male", "meglio", "peggio", "forse", "certamente", "sicuramente",
	// Verbs (common forms)
	"è", "sono", "sei", "siamo", "siete", "era", "erano", "ero", "eri", "eravamo", "eravate",
	"sarà", "saranno", "sarò", "sarai", "saremo", "sarete", "siano", "fossi", "fosse",
	"ha", "ho", "hai", "abbiamo", "avete", "hanno", "aveva", "avevo", "avevi", "avevamo",
	"avevate", "avevano", "avrà", "avrò", "avrai", "avremo", "avrete", "avranno",
	"fa", "fai", "facciamo", "fate", "fanno", "faceva", "facevo", "facevi", "facevamo",
	"va", "vai", "andiamo", "andate", "vanno", "andava", "andavo", "andavi", "andavamo",
	"dice", "dico", "dici", "diciamo", "dite", "dicono", "diceva", "dicevo", "dicevi",
	"viene", "vengo", "vieni", "veniamo", "venite", "vengono", "veniva", "venivo",
	"può", "posso", "puoi", "possiamo", "potete", "possono", "poteva", "potevo",
	"deve", "devo", "devi", "dobbiamo", "dovete", "devono", "doveva", "dovevo",
	"vuole", "voglio", "vuoi", "vogliamo", "volete", "vogliono", "voleva", "volevo",
	// Other common words
	"cosa", "cose", "modo", "tempo", "volta", "volte", "anno", "anni", "giorno", "giorni",
	"parte", "parti", "caso", "casi", "fatto", "fatti", "vita", "mondo", "paese", "stati",
	"stato", "grande", "nuovo", "primo", "ultimo", "altro", "altri", "altre", "tutto",
	"tutti", "tutte", "ogni", "qualche", "niente", "nulla", "qualcosa", "qualcuno",
	"nessuno", "ognuno", "ciascuno", "stesso", "stessa", "stessi", "stesse",
})

var stopwordsEnglish = newStopwordSet([]string{
	// Articles
	"a", "an", "the",
	// Prepositions
	"in", "on", "at", "by", "to", "for", "of", "with", "from", "up", "about", "into",
	"through", "during", "before", "after", "above", "below", "between", "among",
	// Conjunctions
	"and", "or", "but", "so", "yet", "nor", "because", "since", "as", "if",
	"when", "where", "while", "although", "though", "unless", "until", "whereas",
	// Pronouns
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	"my", "your", "his", "its", "our", "their", "this", "that", "these", "those",
	"who", "whom", "whose", "which", "what", "why", "how",
	// Adverbs
	"not", "very", "too", "just", "now", "then", "here", "there",
	"well", "also", "only", "first", "last", "next",
	"new", "old", "good", "bad", "big", "small", "long", "short", "high", "low",
	// Verbs (common forms)
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "will", "would", "could", "should", "may", "might",
	"must", "can", "get", "got", "go", "goes", "went", "going", "come", "came", "coming",
	"see", "saw", "seen", "look", "looking", "know", "knew", "known", "think", "thought",
	"take", "took", "taken", "give", "gave", "given", "make", "made", "making",
	// Other common words
	"all", "any", "some", "no", "one", "two", "other", "many", "most",
	"more", "much", "way", "time", "day", "year", "work", "life", "world", "people",
	"man", "woman", "child", "part", "place", "thing", "right", "left", "same",
	"different", "each", "every", "such", "own", "over", "under", "again", "still",
})

var stopwordsSpanish = newStopwordSet([]string{
	// Articles
	"el", "la", "los", "las", "un", "una", "unos", "unas",
	// Prepositions
	"de", "en", "a", "por", "para", "con", "sin", "sobre", "bajo", "entre", "desde",
	"hasta", "durante", "mediante", "según", "contra", "hacia", "ante", "tras",
	// Conjunctions
	"y", "o", "pero", "sino", "aunque", "porque", "que", "si", "como", "cuando",
	"donde", "mientras", "pues", "así", "también", "tampoco", "ni", "sea", "bien",
	// Pronouns
	"yo", "tú", "él", "ella", "nosotros", "vosotros", "ellos", "ellas", "me", "te",
	"se", "nos", "os", "le", "lo", "les", "mi", "tu", "su",
	"nuestro", "vuestro", "este", "esta", "esto", "estos", "estas", "ese", "esa",
	"eso", "esos", "esas", "aquel", "aquella", "aquello", "aquellos", "aquellas",
	"quien", "cual", "cuales", "cuanto", "cuanta", "cuantos", "cuantas",
	// Common verbs
	"es", "son", "era", "eran", "fue", "fueron", "sean", "ser", "estar",
	"está", "están", "estaba", "estaban", "estuvo", "estuvieron", "esté", "estén",
	"ha", "han", "había", "habían", "hubo", "hubieron", "haya", "hayan", "haber",
	"hace", "hacen", "hacía", "hacían", "hizo", "hicieron", "haga", "hagan", "hacer",
	"va", "van", "iba", "iban", "vaya", "vayan", "ir",
	"dice", "dicen", "decía", "decían", "dijo", "dijeron", "diga", "digan", "decir",
	"viene", "vienen", "venía", "venían", "vino", "vinieron", "venga", "vengan", "venir",
	"puede", "pueden", "podía", "podían", "pudo", "pudieron", "pueda", "puedan", "poder",
	"debe", "deben", "debía", "debían", "debió", "debieron", "deba", "deban", "deber",
	"quiere", "quieren", "quería", "querían", "quiso", "quisieron", "quiera", "quieran",
	// Other common words
	"todo", "toda", "todos", "todas", "otro", "otra", "otros", "otras", "mismo",
	"misma", "mismos", "mismas", "muy", "más", "menos", "tanto", "tan", "mucho",
	"poco", "algo", "nada", "cada", "alguno", "ninguno", "cualquier",
	"bastante", "demasiado", "siempre", "nunca", "ya", "aún", "todavía", "aquí",
	"ahí", "allí", "mal", "mejor", "peor",
})

var stopwordsFrench = newStopwordSet([]string{
	// Articles
	"le", "la", "les", "un", "une", "des", "du", "de",
	// Prepositions
	"à", "dans", "par", "pour", "avec", "sans", "sur", "sous", "entre",
	"vers", "chez", "depuis", "pendant", "avant", "après", "contre", "selon",
	// Conjunctions
	"et", "ou", "mais", "car", "or", "ni", "donc", "que", "si", "comme",
	"quand", "où", "tandis", "bien", "ainsi", "aussi", "encore", "cependant",
	// Pronouns
	"je", "tu", "il", "elle", "nous", "vous", "ils", "elles", "me", "te",
	"se", "lui", "leur", "mon", "ton",
	"son", "notre", "votre", "ce", "cette", "ces", "celui", "celle",
	"ceux", "celles", "qui", "dont", "quoi", "lequel", "laquelle",
	// Common verbs
	"est", "sont", "était", "étaient", "été", "être", "ai", "as", "a", "avons",
	"avez", "ont", "avait", "avaient", "eu", "avoir", "fait", "font", "faisait",
	"faisaient", "faire", "va", "vont", "allait", "allaient", "allé", "aller",
	"dit", "disent", "disait", "disaient", "dire", "vient", "viennent", "venait",
	"venaient", "venu", "venir", "peut", "peuvent", "pouvait", "pouvaient", "pu",
	"pouvoir", "doit", "doivent", "devait", "devaient", "dû", "devoir", "veut",
	"veulent", "voulait", "voulaient", "voulu", "vouloir", "sait", "savent",
	"savait", "savaient", "su", "savoir", "prend", "prennent", "prenait", "prenaient",
	// Other common words
	"tout", "toute", "tous", "toutes", "autre", "autres", "même", "mêmes",
	"très", "plus", "moins", "tant", "beaucoup", "peu", "assez", "trop",
	"quelque", "quelques", "chaque", "aucun", "aucune", "certains", "certaines",
	"plusieurs", "toujours", "jamais", "déjà", "ici", "là",
	"comment", "pourquoi", "mal", "mieux", "pire",
})

var stopwordsGerman = newStopwordSet([]string{
	// Articles
	"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem", "einer", "eines",
	// Prepositions
	"in", "zu", "von", "mit", "bei", "nach", "aus", "auf", "für", "an", "um", "über",
	"unter", "durch", "gegen", "ohne", "während", "wegen", "seit", "bis", "vor", "hinter",
	// Conjunctions
	"und", "oder", "aber", "denn", "doch", "jedoch", "sondern", "dass", "ob", "wenn",
	"als", "wie", "weil", "da", "obwohl", "bevor", "nachdem", "damit", "so",
	// Pronouns
	"ich", "du", "er", "sie", "es", "wir", "ihr", "mich", "dich", "sich", "uns",
	"euch", "ihm", "ihnen", "mein", "dein", "sein", "unser", "euer",
	"dieser", "diese", "dieses", "jener", "jene", "jenes", "welcher", "welche", "welches",
	"wer", "was", "wo", "wann", "warum", "wieviel", "welch",
	// Common verbs
	"ist", "sind", "war", "waren", "bin", "bist", "hat", "haben", "hatte",
	"hatten", "habe", "hast", "wird", "werden", "wurde", "wurden", "werde", "wirst",
	"kann", "können", "konnte", "konnten", "muss", "müssen", "musste", "mussten",
	"will", "wollen", "wollte", "wollten", "soll", "sollen", "sollte", "sollten",
	"macht", "machen", "machte", "machten", "geht", "gehen", "ging", "gingen",
	"kommt", "kommen", "kam", "kamen", "sagt", "sagen", "sagte", "sagten",
	"gibt", "geben", "gab", "gaben", "nimmt", "nehmen", "nahm", "nahmen",
	// Other common words
	"alle", "alles", "andere", "anderen", "anderer", "anderes", "viele", "viel",
	"wenig", "wenige", "mehr", "weniger", "sehr", "auch", "nur", "noch",
	"schon", "immer", "nie", "niemals", "hier", "dort", "wohin",
	"woher", "heute", "gestern", "morgen", "jetzt", "dann", "nun",
	"gut", "schlecht", "besser", "schlechter", "groß", "klein", "neu", "alt",
})

// stopwordsByLanguage maps ISO 639-1 codes to stopword sets.
var stopwordsByLanguage = map[string]map[string]struct{}{
	"it": stopwordsItalian,
	"en": stopwordsEnglish,
	"es": stopwordsSpanish,
	"fr": stopwordsFrench,
	"de": stopwordsGerman,
}

// languageAliases maps English language names to ISO codes.
var languageAliases = map[string]string{
	"italian": "it",
	"english": "en",
	"spanish": "es",
	"french":  "fr",
	"german":  "de",
}

// genericTerms are cross-language terms too generic to be meaningful
// standalone entities.
var genericTerms = newStopwordSet([]string{
	"cosa", "cose", "modo", "tipo", "tipi", "parte", "parti",
	"volta", "volte", "fatto", "fatti", "idea", "idee", "senso",
	"thing", "things", "way", "ways", "part", "parts", "time", "times",
	"ideas", "sense", "point", "points", "kind", "kinds",
})
