package autocomplete_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/autocomplete/internal/autocomplete"
)

var sampleWords = []string{"app", "apple", "apply", "application", "ask", "best", "bet"}

func TestService(t *testing.T) {
	svc := autocomplete.New()

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, len(sampleWords), svc.Add(sampleWords...))
		assert.Equal(t, 0, svc.Add("app", "bet", "", "  "))
		assert.Equal(t, len(sampleWords), svc.Len())
	})

	t.Run("Contains", func(t *testing.T) {
		assert.True(t, svc.Contains("apple"))
		assert.False(t, svc.Contains("ap"))
		assert.False(t, svc.Contains(""))
	})

	t.Run("Suggest", func(t *testing.T) {
		assert.Equal(t, []string{"app", "apple", "application", "apply"}, svc.Suggest("ap"))

		got := svc.Suggest("z")
		assert.NotNil(t, got)
		assert.Empty(t, got)

		got = svc.Suggest(" ")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestService_Unsorted(t *testing.T) {
	svc := autocomplete.New(autocomplete.WithSorted(false))
	svc.Add(sampleWords...)

	assert.ElementsMatch(t, []string{"app", "apple", "apply", "application"}, svc.Suggest("ap"))
	assert.Empty(t, svc.Suggest("x"))
}

func TestService_MaxResults(t *testing.T) {
	t.Run("sorted", func(t *testing.T) {
		svc := autocomplete.New(autocomplete.WithSorted(true), autocomplete.WithMaxResults(2))
		svc.Add(sampleWords...)
		assert.Equal(t, []string{"app", "apple"}, svc.Suggest("ap"))
		assert.Equal(t, []string{"best", "bet"}, svc.Suggest("b"))
	})

	t.Run("unsorted", func(t *testing.T) {
		svc := autocomplete.New(autocomplete.WithSorted(false), autocomplete.WithMaxResults(3))
		svc.Add(sampleWords...)
		got := svc.Suggest("ap")
		assert.Len(t, got, 3)
		assert.Subset(t, []string{"app", "apple", "apply", "application"}, got)
	})
}

func TestService_Load(t *testing.T) {
	input := `# sample vocabulary
app
  apple

apply
app
best
`
	svc := autocomplete.New()
	added, err := svc.Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, added)
	assert.True(t, svc.Contains("apple"))
	assert.False(t, svc.Contains("# sample vocabulary"))
}

func TestService_LoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := autocomplete.New()
	_, err := svc.Load(ctx, strings.NewReader("app\napple\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(sampleWords, "\n")), 0o644))

	svc := autocomplete.New()
	added, err := svc.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, len(sampleWords), added)

	_, err = svc.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestService_Concurrent(t *testing.T) {
	svc := autocomplete.New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				svc.Add(fmt.Sprintf("word-%d-%d", i, j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				svc.Suggest("word-")
				svc.Contains("word-0-0")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, svc.Len())
	assert.Len(t, svc.Suggest("word-"), 800)
	assert.Len(t, svc.Suggest("word-3-"), 100)
}
