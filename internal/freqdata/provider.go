package freqdata

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

//go:embed tables/*.tsv
var embedded embed.FS

const tableExt = ".tsv"

// Provider implements the rarity lookup over per-language Zipf tables.
// Tables ship embedded in the binary and can be extended or overridden by
// <lang>.tsv files in a data directory. Each table file holds one
// word<TAB>zipf pair per line; lines starting with # are comments.
//
// Languages without a table resolve every word to 0, which the scorer
// treats as unknown. Tables load lazily and are cached per language; the
// cache is safe for concurrent use.
type Provider struct {
	dir string

	mu     sync.RWMutex
	tables map[string]map[string]float64
}

// New returns a Provider reading override tables from dir. An empty dir
// means embedded tables only.
func New(dir string) *Provider {
	return &Provider{
		dir:    dir,
		tables: make(map[string]map[string]float64),
	}
}

// Frequency returns the Zipf commonness measure for word in language, or 0
// when the word or the language is unknown.
func (p *Provider) Frequency(word, language string) float64 {
	return p.table(language)[word]
}

// Languages lists the language codes that have a table available, sorted.
func (p *Provider) Languages() []string {
	set := make(map[string]struct{})

	entries, err := fs.ReadDir(embedded, "tables")
	if err == nil {
		for _, e := range entries {
			if code, ok := tableCode(e.Name()); ok {
				set[code] = struct{}{}
			}
		}
	}

	if p.dir != "" {
		dirEntries, err := os.ReadDir(p.dir)
		if err == nil {
			for _, e := range dirEntries {
				if e.IsDir() {
					continue
				}
				if code, ok := tableCode(e.Name()); ok {
					set[code] = struct{}{}
				}
			}
		}
	}

	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func (p *Provider) table(language string) map[string]float64 {
	p.mu.RLock()
	t, ok := p.tables[language]
	p.mu.RUnlock()
	if ok {
		return t
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tables[language]; ok {
		return t
	}
	t = p.load(language)
	p.tables[language] = t
	return t
}

// load merges the embedded table with the data-dir table, data dir
// winning on conflicts. A language with neither yields an empty table.
func (p *Provider) load(language string) map[string]float64 {
	table := make(map[string]float64)

	if raw, err := embedded.ReadFile("tables/" + language + tableExt); err == nil {
		parseTable(bytes.NewReader(raw), table)
	}
	if p.dir != "" {
		if raw, err := os.ReadFile(filepath.Join(p.dir, language+tableExt)); err == nil {
			parseTable(bytes.NewReader(raw), table)
		}
	}
	return table
}

func parseTable(r *bytes.Reader, into map[string]float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, value, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		zipf, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || zipf < 0 {
			continue
		}
		into[strings.ToLower(strings.TrimSpace(word))] = zipf
	}
}

func tableCode(name string) (string, bool) {
	if !strings.HasSuffix(name, tableExt) {
		return "", false
	}
	code := strings.TrimSuffix(name, tableExt)
	if code == "" {
		return "", false
	}
	return code, true
}
