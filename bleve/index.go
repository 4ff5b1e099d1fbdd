// Package bleve provides a fuzzy jassdoc.Index backed by an in-memory
// Bleve index.
package bleve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/ngram"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/fwojciec/jassdoc"
)

// Options configures matching and ranking.
type Options struct {
	// Fuzziness is the edit distance tolerated for long terms (max 2).
	// Inside names it is the number of typos tolerated at any position.
	Fuzziness int

	// FuzzyMinLength is the rune length from which a term is matched fuzzily.
	// Shorter terms must match exactly.
	FuzzyMinLength int

	// MinMatchLength drops query terms shorter than this many runes.
	MinMatchLength int

	// Field boosts.
	NameBoost        float64
	SignatureBoost   float64
	DescriptionBoost float64
}

// DefaultOptions returns moderate fuzziness: one typo in terms of four or
// more runes, terms of one rune ignored, name matches ranked highest.
func DefaultOptions() Options {
	return Options{
		Fuzziness:        1,
		FuzzyMinLength:   4,
		MinMatchLength:   2,
		NameBoost:        3,
		SignatureBoost:   2,
		DescriptionBoost: 1,
	}
}

// identRe matches terms usable in a name wildcard query.
var identRe = regexp.MustCompile(`^\w+$`)

// Analyzers and the hidden field holding name trigrams.
const (
	textAnalyzer   = "jass_text"
	gramAnalyzer   = "jass_name_grams"
	gramFilter     = "jass_trigram"
	fieldNameGrams = "name_grams"

	gramSize = 3
)

var _ jassdoc.Indexer = (*Indexer)(nil)

// Indexer builds in-memory Bleve indexes.
type Indexer struct {
	opts Options
}

// NewIndexer creates a new Indexer.
func NewIndexer(opts Options) *Indexer {
	return &Indexer{opts: opts}
}

// BuildIndex indexes entries by position so hits map back to the slice and
// ties keep extraction order.
func (ix *Indexer) BuildIndex(entries []jassdoc.Entry) (jassdoc.Index, error) {
	m, err := newMapping()
	if err != nil {
		return nil, fmt.Errorf("create mapping: %w", err)
	}
	idx, err := bleve.NewMemOnly(m)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	if len(entries) == 0 {
		return &Index{idx: idx, opts: ix.opts}, nil
	}

	batch := idx.NewBatch()
	for i, e := range entries {
		err := batch.Index(docID(i), map[string]any{
			jassdoc.FieldName:        e.Name,
			fieldNameGrams:           e.Name,
			jassdoc.FieldSignature:   e.Signature,
			jassdoc.FieldDescription: e.Description,
		})
		if err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("index entry %q: %w", e.Name, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("index batch: %w", err)
	}

	return &Index{idx: idx, entries: entries, opts: ix.opts}, nil
}

// newMapping keeps every word, stop words included, since a query term
// that cannot match would veto the whole query. Names are additionally
// indexed as trigrams of the whole lowercased name.
func newMapping() (mapping.IndexMapping, error) {
	m := bleve.NewIndexMapping()

	if err := m.AddCustomAnalyzer(textAnalyzer, map[string]any{
		"type":          custom.Name,
		"tokenizer":     unicode.Name,
		"token_filters": []any{lowercase.Name},
	}); err != nil {
		return nil, err
	}
	if err := m.AddCustomTokenFilter(gramFilter, map[string]any{
		"type": ngram.Name,
		"min":  float64(gramSize),
		"max":  float64(gramSize),
	}); err != nil {
		return nil, err
	}
	if err := m.AddCustomAnalyzer(gramAnalyzer, map[string]any{
		"type":          custom.Name,
		"tokenizer":     single.Name,
		"token_filters": []any{lowercase.Name, gramFilter},
	}); err != nil {
		return nil, err
	}

	text := bleve.NewTextFieldMapping()
	text.Analyzer = textAnalyzer
	text.Store = false
	text.IncludeTermVectors = false

	grams := bleve.NewTextFieldMapping()
	grams.Analyzer = gramAnalyzer
	grams.Store = false
	grams.IncludeTermVectors = false
	grams.IncludeInAll = false

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(jassdoc.FieldName, text)
	doc.AddFieldMappingsAt(fieldNameGrams, grams)
	doc.AddFieldMappingsAt(jassdoc.FieldSignature, text)
	doc.AddFieldMappingsAt(jassdoc.FieldDescription, text)

	m.DefaultMapping = doc
	m.DefaultAnalyzer = textAnalyzer
	return m, nil
}

// Zero-padded IDs sort in extraction order.
func docID(i int) string {
	return fmt.Sprintf("%08d", i)
}

var _ jassdoc.Index = (*Index)(nil)

// Index is a read-only fuzzy index over a fixed entry slice.
type Index struct {
	idx     bleve.Index
	entries []jassdoc.Entry
	opts    Options
}

// Search returns entries matching every usable query term, by score
// descending then extraction order.
func (i *Index) Search(q string) ([]jassdoc.Entry, error) {
	if len(i.entries) == 0 {
		return nil, nil
	}
	qry := i.buildQuery(q)
	if qry == nil {
		return nil, nil
	}

	req := bleve.NewSearchRequestOptions(qry, len(i.entries), 0, false)
	req.SortBy([]string{"-_score", "_id"})

	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}

	hits := make([]jassdoc.Entry, 0, len(res.Hits))
	for _, hit := range res.Hits {
		n, err := strconv.Atoi(hit.ID)
		if err != nil || n < 0 || n >= len(i.entries) {
			continue
		}
		hits = append(hits, i.entries[n])
	}
	return hits, nil
}

// buildQuery returns nil when no term is long enough to match.
func (i *Index) buildQuery(q string) query.Query {
	var terms []query.Query
	for _, term := range strings.Fields(q) {
		n := utf8.RuneCountInString(term)
		if n < i.opts.MinMatchLength {
			continue
		}
		fuzziness := 0
		if n >= i.opts.FuzzyMinLength {
			fuzziness = i.opts.Fuzziness
		}
		terms = append(terms, i.termQuery(strings.ToLower(term), fuzziness))
	}
	if len(terms) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(terms)
}

// termQuery matches one term in any field. A name matches when it contains
// the term, or most of the term's trigrams when fuzziness allows typos.
// Signature and description words also match by prefix, so a word still
// being typed already finds its entries.
func (i *Index) termQuery(term string, fuzziness int) query.Query {
	fields := []struct {
		name  string
		boost float64
	}{
		{jassdoc.FieldName, i.opts.NameBoost},
		{jassdoc.FieldSignature, i.opts.SignatureBoost},
		{jassdoc.FieldDescription, i.opts.DescriptionBoost},
	}

	var alts []query.Query
	for _, f := range fields {
		m := query.NewMatchQuery(term)
		m.SetField(f.name)
		m.SetFuzziness(fuzziness)
		m.SetBoost(f.boost)
		alts = append(alts, m)
	}

	for _, f := range fields[1:] {
		p := query.NewPrefixQuery(term)
		p.SetField(f.name)
		p.SetBoost(f.boost)
		alts = append(alts, p)
	}

	if identRe.MatchString(term) {
		w := query.NewWildcardQuery("*" + term + "*")
		w.SetField(jassdoc.FieldName)
		w.SetBoost(i.opts.NameBoost)
		alts = append(alts, w)
	}

	if fuzziness > 0 {
		if g := i.gramQuery(term, fuzziness); g != nil {
			alts = append(alts, g)
		}
	}

	return query.NewDisjunctionQuery(alts)
}

// gramQuery matches names sharing enough trigrams with term. One typo
// spoils at most three trigrams; at least two thirds must match regardless,
// so short terms cannot match on a single shared trigram.
func (i *Index) gramQuery(term string, fuzziness int) query.Query {
	grams := trigrams(term)
	if len(grams) < 2 {
		return nil
	}

	clauses := make([]query.Query, 0, len(grams))
	for _, g := range grams {
		t := query.NewTermQuery(g)
		t.SetField(fieldNameGrams)
		clauses = append(clauses, t)
	}

	need := max(len(grams)-gramSize*fuzziness, (2*len(grams)+2)/3)
	q := query.NewDisjunctionQuery(clauses)
	q.SetMin(float64(need))
	q.SetBoost(i.opts.NameBoost)
	return q
}

// trigrams returns the distinct rune trigrams of s in order.
func trigrams(s string) []string {
	r := []rune(s)
	seen := make(map[string]bool)
	var out []string
	for k := 0; k+gramSize <= len(r); k++ {
		g := string(r[k : k+gramSize])
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

// Close releases the underlying Bleve index.
func (i *Index) Close() error {
	return i.idx.Close()
}
