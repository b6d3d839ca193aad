package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// touch creates an empty file at path.
func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestResolve_ReturnsEarliestExistingPath(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name        string
		candidates  []string
		existing    []string
		wantPath    string
		wantFound   bool
		description string
	}{
		{
			name:        "SingleCandidateExists",
			candidates:  []string{filepath.Join(tmp, "opt", "app", "bin", "tool")},
			existing:    []string{filepath.Join(tmp, "opt", "app", "bin", "tool")},
			wantPath:    filepath.Join(tmp, "opt", "app", "bin", "tool"),
			wantFound:   true,
			description: "A lone existing candidate should resolve to itself",
		},
		{
			name:        "SecondCandidateExists",
			candidates:  []string{filepath.Join(tmp, "a", "x"), filepath.Join(tmp, "b", "x")},
			existing:    []string{filepath.Join(tmp, "b", "x")},
			wantPath:    filepath.Join(tmp, "b", "x"),
			wantFound:   true,
			description: "The search should fall through to later candidates",
		},
		{
			name:        "BothCandidatesExist",
			candidates:  []string{filepath.Join(tmp, "first", "x"), filepath.Join(tmp, "second", "x")},
			existing:    []string{filepath.Join(tmp, "first", "x"), filepath.Join(tmp, "second", "x")},
			wantPath:    filepath.Join(tmp, "first", "x"),
			wantFound:   true,
			description: "Ties always resolve to the earliest-listed candidate",
		},
		{
			name:        "NoCandidateExists",
			candidates:  []string{filepath.Join(tmp, "missing", "x"), filepath.Join(tmp, "gone", "x")},
			existing:    nil,
			wantPath:    "",
			wantFound:   false,
			description: "A full miss should report absence, not an error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range tt.existing {
				touch(t, p)
			}

			set := CandidateSet{Resource: "tool", Paths: tt.candidates}
			loc := set.Resolve()

			assert.Equal(t, tt.wantFound, loc.Found, tt.description)
			assert.Equal(t, tt.wantPath, loc.Path, tt.description)
			assert.Equal(t, "tool", loc.Resource)
		})
	}
}

func TestExists_StatErrorCountsAsAbsence(t *testing.T) {
	tmp := t.TempDir()

	// Using a regular file as a path component makes stat fail with
	// ENOTDIR rather than ENOENT. The locator must treat that the same
	// as a plain miss.
	file := filepath.Join(tmp, "not-a-dir")
	touch(t, file)

	assert.False(t, Exists(filepath.Join(file, "child")))
}

func TestResolve_PropertyEarliestExistingIndexWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tmp, err := os.MkdirTemp("", "locator")
		if err != nil {
			t.Fatalf("temp dir: %v", err)
		}
		defer os.RemoveAll(tmp)

		n := rapid.IntRange(1, 8).Draw(t, "candidateCount")
		exists := rapid.SliceOfN(rapid.Bool(), n, n).Draw(t, "existing")

		candidates := make([]string, n)
		wantIndex := -1
		for i := range candidates {
			candidates[i] = filepath.Join(tmp, fmt.Sprintf("candidate-%d", i))
			if exists[i] {
				if err := os.WriteFile(candidates[i], nil, 0644); err != nil {
					t.Fatalf("write candidate: %v", err)
				}
				if wantIndex == -1 {
					wantIndex = i
				}
			}
		}

		loc := CandidateSet{Resource: "r", Paths: candidates}.Resolve()

		if wantIndex == -1 {
			if loc.Found {
				t.Fatalf("expected a miss, got %q", loc.Path)
			}
			return
		}
		if !loc.Found {
			t.Fatalf("expected candidate %d to resolve, got a miss", wantIndex)
		}
		if loc.Path != candidates[wantIndex] {
			t.Fatalf("resolved %q, want earliest existing %q", loc.Path, candidates[wantIndex])
		}
	})
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte("tool:\n  - '/a/x'\n  - '/b/x'\n"))
	require.NoError(t, err)

	set, ok := table.Lookup("tool")
	require.True(t, ok)
	assert.Equal(t, []string{"/a/x", "/b/x"}, set.Paths)

	_, ok = table.Lookup("unknown")
	assert.False(t, ok)
}

func TestParseTable_RejectsEmptyCandidateList(t *testing.T) {
	_, err := ParseTable([]byte("tool: []\n"))
	assert.Error(t, err)
}

func TestDefaultTable_KnowsGameAndTesseract(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	for _, resource := range []string{ResourceGame, ResourceTesseract} {
		set, ok := table.Lookup(resource)
		require.True(t, ok, "default table should know %q", resource)
		assert.NotEmpty(t, set.Paths)
	}
}
