package autocomplete

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/autocomplete/internal/trie"
)

// Service is a trie guarded for concurrent use: inserts are exclusive,
// lookups share a read lock.
type Service struct {
	mu   sync.RWMutex
	trie *trie.Trie

	sorted     bool
	maxResults int
	logger     zerolog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger used by the service
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithSorted makes Suggest return words in lexicographical order
func WithSorted(sorted bool) Option {
	return func(s *Service) {
		s.sorted = sorted
	}
}

// WithMaxResults caps the number of suggestions; n <= 0 means no cap
func WithMaxResults(n int) Option {
	return func(s *Service) {
		s.maxResults = n
	}
}

// New creates an empty service
func New(opts ...Option) *Service {
	s := &Service{
		trie:   trie.New(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add inserts words and returns how many of them were not already stored.
// Blank words are skipped.
func (s *Service) Add(words ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.trie.Len()
	for _, w := range words {
		s.trie.Insert(w)
	}
	added := s.trie.Len() - before

	s.logger.Debug().Int("words", len(words)).Int("added", added).Msg("Added words")
	return added
}

// Contains reports whether word is stored as a complete word
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.Search(word)
}

// Suggest returns the stored words starting with prefix. The result is never nil.
func (s *Service) Suggest(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []string
	if s.sorted {
		results = []string{}
		s.trie.Walk(prefix, func(word string) bool {
			results = append(results, word)
			return s.maxResults <= 0 || len(results) < s.maxResults
		})
	} else {
		results = s.trie.SearchPrefix(prefix)
		if s.maxResults > 0 && len(results) > s.maxResults {
			results = results[:s.maxResults]
		}
	}

	s.logger.Debug().Str("prefix", prefix).Int("results", len(results)).Msg("Suggest")
	return results
}

// Len returns the number of distinct stored words
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.Len()
}

// Load reads a newline-delimited vocabulary from r. Lines are trimmed; blank
// lines and lines starting with '#' are skipped. It returns the number of new
// words stored.
func (s *Service) Load(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	added := 0
	batch := make([]string, 0, 256)
	flush := func() {
		added += s.Add(batch...)
		batch = batch[:0]
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			flush()
			return added, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		batch = append(batch, line)
		if len(batch) == cap(batch) {
			flush()
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	return added, nil
}

// LoadFile loads a vocabulary file, see Load
func (s *Service) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close()

	added, err := s.Load(ctx, f)
	if err != nil {
		return added, fmt.Errorf("failed to load %s: %w", path, err)
	}

	s.logger.Info().Str("path", path).Int("added", added).Int("total", s.Len()).Msg("Loaded vocabulary")
	return added, nil
}
