package dictionary

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed data/words.txt data/stopwords.txt
var builtin embed.FS

// Default builds a dictionary from the embedded word and stop-word lists,
// so the engine works with zero setup. Callers layer user dictionaries on
// top with Load before publishing the snapshot.
func Default() *Dictionary {
	d := New()
	addEmbedded(d, "data/words.txt", d.Add)
	addEmbedded(d, "data/stopwords.txt", d.AddStop)
	d.Loaded = true
	return d
}

func addEmbedded(d *Dictionary, name string, add func(string)) {
	f, err := builtin.Open(name)
	if err != nil {
		// Embedded files are part of the build; missing means a broken build.
		panic("dictionary: missing embedded " + name)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		add(line)
	}
}
