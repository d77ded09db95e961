package lorem

// Library is a named set of candidate words for placeholder text.
// Libraries are static and never mutated after package init.
type Library struct {
	Name  string
	Words []string
}

var latin = Library{
	Name: "latin",
	Words: []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "eiusmod", "tempor", "incididunt",
		"labore", "dolore", "magna", "aliqua", "enim", "minim",
		"veniam", "quis", "nostrud", "exercitation", "ullamco",
		"laboris", "nisi", "aliquip", "commodo", "consequat", "duis",
		"aute", "irure", "reprehenderit", "voluptate", "velit", "esse",
		"cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
		"occaecat", "cupidatat", "proident", "sunt", "culpa", "officia",
		"deserunt", "mollit", "anim", "laborum",
	},
}

var english = Library{
	Name: "english",
	Words: []string{
		"time", "year", "people", "way", "day", "man", "thing",
		"woman", "life", "child", "world", "school", "state", "family",
		"student", "group", "country", "problem", "hand", "part",
		"place", "case", "week", "company", "system", "program",
		"question", "work", "government", "number", "night", "point",
		"home", "water", "room", "mother", "area", "money", "story",
		"fact", "month", "book", "house", "garden", "river", "light",
		"morning", "window", "paper", "music",
	},
}

var tech = Library{
	Name: "tech",
	Words: []string{
		"server", "database", "network", "protocol", "compiler",
		"runtime", "kernel", "thread", "process", "memory", "cache",
		"buffer", "socket", "packet", "router", "cluster", "container",
		"pipeline", "deploy", "commit", "branch", "merge", "release",
		"latency", "throughput", "encryption", "token", "session",
		"query", "index", "schema", "backup", "replica", "gateway",
		"endpoint", "payload", "request", "response", "service",
		"module", "function", "variable", "array", "string", "integer",
		"boolean", "pointer", "interface", "framework", "library",
	},
}

var business = Library{
	Name: "business",
	Words: []string{
		"strategy", "synergy", "leverage", "stakeholder", "revenue",
		"growth", "market", "customer", "product", "brand", "value",
		"metric", "target", "quarter", "forecast", "budget", "margin",
		"pipeline", "prospect", "conversion", "retention", "churn",
		"engagement", "roadmap", "milestone", "deliverable", "scope",
		"alignment", "bandwidth", "capacity", "initiative", "proposal",
		"agenda", "meeting", "action", "outcome", "impact", "insight",
		"analysis", "report", "dashboard", "benchmark", "portfolio",
		"investment", "capital", "asset", "equity", "dividend",
		"acquisition", "partnership",
	},
}

var libraries = map[string]Library{
	latin.Name:    latin,
	english.Name:  english,
	tech.Name:     tech,
	business.Name: business,
}

// LibraryFor returns the word library for the given style name. An
// unrecognized style falls back to the plain-English library.
func LibraryFor(style string) Library {
	if lib, ok := libraries[style]; ok {
		return lib
	}
	return english
}

// Styles lists the available library names in a fixed order.
func Styles() []string {
	return []string{latin.Name, english.Name, tech.Name, business.Name}
}
