package spike

// Word lists for generated slugs. Each list holds 50 entries, giving
// 125,000 adjective-color-animal combinations.
var (
	Adjectives = []string{
		"bold", "brave", "bright", "brisk", "calm",
		"clever", "cool", "crisp", "daring", "eager",
		"fancy", "fast", "fierce", "fleet", "fresh",
		"fuzzy", "gentle", "grand", "happy", "keen",
		"lively", "lucky", "merry", "mighty", "murky",
		"noble", "plucky", "proud", "quick", "quiet",
		"rapid", "rusty", "sharp", "sleek", "slim",
		"smart", "snappy", "steady", "stout", "sturdy",
		"subtle", "sure", "swift", "tall", "tiny",
		"vivid", "warm", "wild", "wise", "witty",
	}

	Colors = []string{
		"amber", "azure", "beige", "black", "blue",
		"brass", "bronze", "brown", "coral", "cream",
		"crimson", "cyan", "dusk", "fawn", "frost",
		"gold", "gray", "green", "hazel", "indigo",
		"ivory", "jade", "lemon", "lilac", "lime",
		"maple", "mauve", "mint", "navy", "olive",
		"opal", "peach", "pearl", "pine", "plum",
		"rose", "ruby", "rust", "sage", "sand",
		"scarlet", "slate", "smoke", "steel", "stone",
		"tawny", "teal", "umber", "violet", "wine",
	}

	Animals = []string{
		"badger", "bear", "bison", "crane", "crow",
		"deer", "dove", "eagle", "egret", "elk",
		"falcon", "ferret", "finch", "fox", "frog",
		"goose", "gull", "hare", "hawk", "heron",
		"horse", "ibis", "jackal", "jay", "kite",
		"lark", "lion", "lynx", "marten", "mink",
		"moose", "newt", "otter", "owl", "panda",
		"parrot", "pike", "puma", "quail", "raven",
		"robin", "salmon", "seal", "shrike", "snake",
		"sparrow", "stork", "swift", "tiger", "wolf",
	}
)
