package slug_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/slug"
)

// takenSet returns an ExistsFunc backed by an in-memory set and a counter of
// how many lookups were made.
func takenSet(slugs ...string) (slug.ExistsFunc, *int) {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	calls := 0
	return func(_ context.Context, s string) (bool, error) {
		calls++
		return set[s], nil
	}, &calls
}

// ---- Normalize -------------------------------------------------------------

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Data Structures", "data-structures"},
		{"WALMART", "walmart"},
		{"Rocky  Mountains!", "rocky-mountains"},
		{"Smith--John", "smith-john"},
		{"2019-Fall", "2019-fall"},
		{"  --leading and trailing--  ", "leading-and-trailing"},
		{"C++ / Intro", "c-intro"},
		{"Müller", "muller"},
		{"Zoë Ångström", "zoe-angstrom"},
		{"under_score", "under-score"},
		{"Straße", "strasse"},
		{"Łódź", "lodz"},
		{"Œuvre", "oeuvre"},
		{"Ærø Øster", "aero-oster"},
		{"Þórsdóttir", "thorsdottir"},
		{"Đorđević", "dordevic"},
		{"!!! ---", ""},
		{"", ""},
		{"日本語", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Normalize(tt.in))
		})
	}
}

// ---- Assign ----------------------------------------------------------------

func TestAssign_Unused_ReturnsBase(t *testing.T) {
	exists, calls := takenSet()

	got, err := slug.Assign(context.Background(), "Data Structures", exists)

	require.NoError(t, err)
	assert.Equal(t, "data-structures", got)
	assert.Equal(t, 1, *calls, "a free base needs exactly one lookup")
}

func TestAssign_Collisions_AppendsFirstFreeSuffix(t *testing.T) {
	exists, _ := takenSet("data-structures", "data-structures-1")

	got, err := slug.Assign(context.Background(), "Data Structures", exists)

	require.NoError(t, err)
	assert.Equal(t, "data-structures-2", got)
}

func TestAssign_SuffixesAreNotCumulative(t *testing.T) {
	exists, _ := takenSet("smith-john", "smith-john-1", "smith-john-2")

	got, err := slug.Assign(context.Background(), "Smith--John", exists)

	require.NoError(t, err)
	assert.Equal(t, "smith-john-3", got, "suffix replaces the previous one instead of stacking")
}

func TestAssign_GapInSequence_ReturnsGap(t *testing.T) {
	exists, _ := takenSet("intro", "intro-2")

	got, err := slug.Assign(context.Background(), "Intro", exists)

	require.NoError(t, err)
	assert.Equal(t, "intro-1", got)
}

// TestAssign_Sequence assigns N slugs from the same label, recording each one
// as taken, and expects base, base-1, ..., base-(N-1).
func TestAssign_Sequence(t *testing.T) {
	const n = 25
	taken := map[string]bool{}
	exists := func(_ context.Context, s string) (bool, error) { return taken[s], nil }

	want := []string{"algorithms"}
	for i := 1; i < n; i++ {
		want = append(want, "algorithms-"+strconv.Itoa(i))
	}

	var got []string
	for i := 0; i < n; i++ {
		s, err := slug.Assign(context.Background(), "Algorithms", exists)
		require.NoError(t, err)
		taken[s] = true
		got = append(got, s)
	}

	assert.Equal(t, want, got)
	assert.Len(t, taken, n, "every assigned slug must be distinct")
}

func TestAssign_DifferentLabelsSameBase_Collide(t *testing.T) {
	exists, _ := takenSet("data-structures")

	got, err := slug.Assign(context.Background(), "DATA   structures!!", exists)

	require.NoError(t, err)
	assert.Equal(t, "data-structures-1", got)
}

func TestAssign_EmptyAfterNormalization_UsesFallback(t *testing.T) {
	exists, _ := takenSet()

	got, err := slug.Assign(context.Background(), "!!! ---", exists)

	require.NoError(t, err)
	assert.Equal(t, slug.Fallback, got)
}

func TestAssign_FallbackCollides_Suffixed(t *testing.T) {
	exists, _ := takenSet(slug.Fallback)

	got, err := slug.Assign(context.Background(), "", exists)

	require.NoError(t, err)
	assert.Equal(t, slug.Fallback+"-1", got)
}

func TestAssign_ExistsError_Propagates(t *testing.T) {
	boom := errors.New("connection reset")
	exists := func(context.Context, string) (bool, error) { return false, boom }

	got, err := slug.Assign(context.Background(), "Data Structures", exists)

	require.ErrorIs(t, err, boom)
	assert.Empty(t, got)
}

func TestAssign_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")
	exists := func(ctx context.Context, _ string) (bool, error) {
		assert.Equal(t, "marker", ctx.Value(key{}))
		return false, nil
	}

	_, err := slug.Assign(ctx, "x", exists)
	require.NoError(t, err)
}
