package postag

// builtinFunctionWords is the closed-class lexicon used when a row carries no UPOS tag.
var builtinFunctionWords = map[string][]string{
	"en": {
		"a", "about", "above", "across", "after", "afterwards", "again", "against", "all",
		"almost", "alone", "along", "already", "also", "although", "always", "am", "among",
		"amongst", "an", "and", "another", "any", "anyhow", "anyone", "anything", "anyway",
		"anywhere", "are", "aren't", "around", "as", "at", "be", "became", "because", "become",
		"becomes", "becoming", "been", "before", "beforehand", "behind", "being", "below",
		"beside", "besides", "between", "beyond", "both", "but", "by", "can", "can't", "cannot",
		"could", "couldn't", "did", "didn't", "do", "does", "doesn't", "doing", "don't", "down",
		"during", "each", "either", "else", "elsewhere", "enough", "entirely", "especially",
		"even", "ever", "every", "everyone", "everything", "everywhere", "few", "for", "former",
		"formerly", "from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
		"having", "he", "he'd", "he'll", "he's", "hence", "her", "here", "hereafter", "hereby",
		"herein", "here's", "hereupon", "hers", "herself", "him", "himself", "his", "how",
		"however", "i", "i'd", "i'll", "i'm", "i've", "if", "in", "indeed", "into", "is",
		"isn't", "it", "it's", "its", "itself", "just", "latter", "latterly", "least", "less",
		"let", "let's", "many", "may", "maybe", "me", "meanwhile", "might", "mine", "more",
		"moreover", "most", "mostly", "much", "must", "mustn't", "my", "myself", "neither",
		"never", "nevertheless", "next", "no", "nobody", "none", "nor", "not", "nothing", "now",
		"nowhere", "of", "off", "often", "on", "once", "one", "only", "onto", "or", "other",
		"others", "otherwise", "our", "ours", "ourselves", "out", "over", "own", "per",
		"perhaps", "rather", "same", "seem", "seemed", "seeming", "seems", "several", "she",
		"she'd", "she'll", "she's", "should", "shouldn't", "since", "so", "some", "somehow",
		"someone", "something", "sometime", "sometimes", "somewhere", "still", "such", "than",
		"that", "that's", "the", "their", "theirs", "them", "themselves", "then", "thence",
		"there", "thereafter", "thereby", "therefore", "therein", "there's", "thereupon",
		"these", "they", "they'd", "they'll", "they're", "they've", "this", "those", "through",
		"throughout", "thus", "to", "together", "too", "toward", "towards", "under", "until",
		"up", "upon", "us", "very", "via", "was", "wasn't", "we", "we'd", "we'll", "we're",
		"we've", "were", "weren't", "what", "whatever", "what's", "when", "whence", "whenever",
		"where", "whereafter", "whereas", "whereby", "wherein", "where's", "whereupon",
		"wherever", "whether", "which", "while", "whither", "who", "who'd", "whoever", "who'll",
		"who's", "whose", "why", "with", "within", "without", "won't", "would", "wouldn't",
		"yet", "you", "you'd", "you'll", "you're", "you've", "your", "yours", "yourself",
		"yourselves", "ain't", "it'll", "shan't", "that'll",
	},
	"de": {
		"aber", "alle", "allem", "allen", "aller", "alles", "als", "also", "am", "an", "ans",
		"auch", "auf", "aus", "bei", "beim", "bin", "bis", "bist", "da", "damit", "dann", "das",
		"dass", "dein", "deine", "dem", "den", "denn", "der", "des", "dessen", "deshalb", "die",
		"dies", "diese", "diesem", "diesen", "dieser", "dieses", "doch", "dort", "du", "durch",
		"ein", "eine", "einem", "einen", "einer", "eines", "er", "es", "etwas", "euch", "euer",
		"falls", "für", "gegen", "hab", "habe", "haben", "hat", "hatte", "hätte", "ich", "ihm",
		"ihn", "ihnen", "ihr", "ihre", "im", "in", "ins", "ist", "ja", "jede", "jedem", "jeden",
		"jeder", "jedes", "jene", "jenem", "jenen", "jener", "jenes", "kann", "kein", "keine",
		"können", "könnte", "man", "manche", "mancher", "mein", "meine", "mich", "mir", "mit",
		"muss", "musste", "nach", "nein", "nicht", "nichts", "noch", "nun", "nur", "ob", "oder",
		"ohne", "sehr", "sein", "seine", "sich", "sie", "sind", "so", "solche", "soll", "sollte",
		"sondern", "sonst", "über", "um", "und", "uns", "unser", "unter", "vom", "von", "vor",
		"war", "waren", "warum", "was", "weil", "welche", "welchem", "welchen", "welcher",
		"welches", "wenn", "wer", "werde", "werden", "wie", "wieder", "will", "wir", "wird",
		"wo", "wollen", "würde", "zu", "zum", "zur", "zwar", "zwischen",
	},
}
