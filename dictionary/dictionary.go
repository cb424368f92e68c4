package dictionary

import (
	"bufio"
	"os"
	"strings"
	"sync/atomic"
)

// MinWordLen and MaxWordLen bound the length classes the dictionary keys on.
// Multi-character matching only considers words of 2 to 4 runes; longer
// entries are ignored on load.
const (
	MinWordLen = 2
	MaxWordLen = 4
)

// Dictionary holds known words keyed by rune length, plus a stop-word set.
// A Dictionary is immutable once published through a Store; build it fully
// before calling Store.Swap.
type Dictionary struct {
	ByLength map[int]map[string]struct{}
	Stop     map[string]struct{}
	MaxLen   int
	Loaded   bool
}

// New creates a new empty dictionary.
func New() *Dictionary {
	byLen := make(map[int]map[string]struct{}, MaxWordLen-MinWordLen+1)
	for n := MinWordLen; n <= MaxWordLen; n++ {
		byLen[n] = make(map[string]struct{})
	}
	return &Dictionary{
		ByLength: byLen,
		Stop:     make(map[string]struct{}),
	}
}

// Add inserts a word into its length class. Words outside the
// [MinWordLen, MaxWordLen] range are ignored.
func (d *Dictionary) Add(word string) {
	n := len([]rune(word))
	if n < MinWordLen || n > MaxWordLen {
		return
	}
	d.ByLength[n][word] = struct{}{}
	if n > d.MaxLen {
		d.MaxLen = n
	}
}

// AddStop inserts a word into the stop-word set.
func (d *Dictionary) AddStop(word string) {
	if word == "" {
		return
	}
	d.Stop[word] = struct{}{}
}

// Contains checks if a word of the given rune length exists in the dictionary.
func (d *Dictionary) Contains(word string, n int) bool {
	set, ok := d.ByLength[n]
	if !ok {
		return false
	}
	_, ok = set[word]
	return ok
}

// IsStop checks if a word is in the stop-word set.
func (d *Dictionary) IsStop(word string) bool {
	_, ok := d.Stop[word]
	return ok
}

// Size returns the total number of dictionary words across all length classes.
func (d *Dictionary) Size() int {
	total := 0
	for _, set := range d.ByLength {
		total += len(set)
	}
	return total
}

// Load loads words from a file, one word per line. Lines may carry a
// trailing frequency column which is ignored; blank lines and lines
// starting with # are skipped. Loading the same file twice is harmless.
func (d *Dictionary) Load(path string) error {
	return d.loadLines(path, d.Add)
}

// LoadStop loads stop words from a file in the same format as Load.
func (d *Dictionary) LoadStop(path string) error {
	return d.loadLines(path, d.AddStop)
}

func (d *Dictionary) loadLines(path string, add func(string)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		add(parts[0])
	}
	d.Loaded = true
	return scanner.Err()
}

// Store publishes a Dictionary snapshot to concurrent readers. Swap replaces
// the whole snapshot atomically, so in-flight segmentation observes either
// the old or the new dictionary in full, never a partial mix.
type Store struct {
	ptr atomic.Pointer[Dictionary]
}

// NewStore creates a store holding the given initial snapshot.
func NewStore(d *Dictionary) *Store {
	s := &Store{}
	s.ptr.Store(d)
	return s
}

// Snapshot returns the current dictionary snapshot.
func (s *Store) Snapshot() *Dictionary {
	return s.ptr.Load()
}

// Swap replaces the published snapshot wholesale.
func (s *Store) Swap(d *Dictionary) {
	s.ptr.Store(d)
}
