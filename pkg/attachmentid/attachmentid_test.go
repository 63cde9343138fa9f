package attachmentid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("domain and id", func(t *testing.T) {
		id, err := New("example.com", "doc123")
		require.NoError(t, err)
		assert.Equal(t, "example.com", id.Domain())
		assert.Equal(t, "doc123", id.LocalID())
		assert.False(t, id.IsLegacy())
		assert.Equal(t, "example.com/doc123", id.String())
	})

	t.Run("legacy id without domain", func(t *testing.T) {
		id, err := New("", "legacyToken")
		require.NoError(t, err)
		assert.True(t, id.IsLegacy())
		assert.Equal(t, "legacyToken", id.String())
	})

	t.Run("empty local id is allowed", func(t *testing.T) {
		id, err := New("example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "example.com/", id.String())
	})

	t.Run("domain with separator", func(t *testing.T) {
		_, err := New("a/b", "c")
		require.Error(t, err)

		var invalid *InvalidComponentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, ComponentDomain, invalid.Component)
		assert.Equal(t, "a/b", invalid.Value)
		assert.ErrorIs(t, err, ErrInvalidComponent)
		assert.Contains(t, err.Error(), "domain component")
	})

	t.Run("id with separator", func(t *testing.T) {
		_, err := New("a", "b/c")
		require.Error(t, err)

		var invalid *InvalidComponentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, ComponentID, invalid.Component)
		assert.Equal(t, "b/c", invalid.Value)
	})

	t.Run("domain is checked before id", func(t *testing.T) {
		_, err := New("a/b", "c/d")

		var invalid *InvalidComponentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, ComponentDomain, invalid.Component)
	})
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() { MustNew("example.com", "doc123") })
	assert.Panics(t, func() { MustNew("example.com", "a/b") })
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantDomain string
		wantID     string
	}{
		{"domain and id", "example.com/doc123", "example.com", "doc123"},
		{"legacy token", "legacyToken", "", "legacyToken"},
		{"trailing separator gives empty id", "example.com/", "example.com", ""},
		{"leading separator gives legacy id", "/doc123", "", "doc123"},
		{"unicode components", "例え.jp/ファイル", "例え.jp", "ファイル"},
		{"colons are ordinary characters", "wave:server/att+1", "wave:server", "att+1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDomain, id.Domain())
			assert.Equal(t, tt.wantID, id.LocalID())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"x/y/z",
		"a/b/c",
		"a//b",
		"/",
		"example.com/doc/",
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			id, err := Parse(input)
			require.Error(t, err)
			assert.True(t, id.IsZero())

			var malformed *MalformedError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, input, malformed.Input)
			assert.Equal(t, ExpectedFormats, malformed.Hint)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), "<domain>/<id> or <id>")
		})
	}
}

func TestParse_LeadingSeparator(t *testing.T) {
	id, err := Parse("/doc123")
	require.NoError(t, err)
	assert.Equal(t, MustNew("", "doc123"), id)
	assert.True(t, id.IsLegacy())

	// Encoding stays canonical.
	assert.Equal(t, "doc123", id.String())
}

func TestParseNullable(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		_, err := ParseNullable(nil)
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("present input", func(t *testing.T) {
		s := "example.com/doc123"
		id, err := ParseNullable(&s)
		require.NoError(t, err)
		assert.Equal(t, MustNew("example.com", "doc123"), id)
	})
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "doc123", MustParse("example.com/doc123").LocalID())
	assert.Panics(t, func() { MustParse("x/y/z") })
}

func TestRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"example.com", "doc123"},
		{"example.com", ""},
		{"a", "b"},
		{"files.example.com", "1a2b3c4d5e6f7890"},
		{"", "legacyToken"},
		{"with space", "and:colon"},
	}

	for _, p := range pairs {
		t.Run(p[0]+"|"+p[1], func(t *testing.T) {
			original := MustNew(p[0], p[1])
			decoded, err := Parse(original.String())
			require.NoError(t, err)
			assert.True(t, original.Equal(decoded))
			assert.Equal(t, original, decoded)
			assert.Equal(t, original.String(), decoded.String())
		})
	}
}

func TestLegacyRoundTrip(t *testing.T) {
	for _, token := range []string{"legacyToken", "abc", "x.y.z", "has space"} {
		parsed := MustParse(token)
		assert.Equal(t, MustNew("", token), parsed)
		assert.Equal(t, token, MustNew("", token).String())
	}
}

func TestString_Injective(t *testing.T) {
	ids := []ID{
		MustNew("", "a"),
		MustNew("a", ""),
		MustNew("a", "b"),
		MustNew("ab", ""),
		MustNew("", "ab"),
		MustNew("b", "a"),
		MustNew("a", "bc"),
		MustNew("ab", "c"),
	}

	seen := make(map[string]ID)
	for _, id := range ids {
		if prev, ok := seen[id.String()]; ok {
			t.Fatalf("%#v and %#v both encode to %q", prev, id, id.String())
		}
		seen[id.String()] = id
	}
}

func TestString_Stable(t *testing.T) {
	id := MustNew("example.com", "doc123")
	first := id.String()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, id.String())
	}
}

func TestEqual(t *testing.T) {
	a := MustNew("example.com", "doc123")
	b := MustParse("example.com/doc123")

	assert.True(t, a.Equal(b))
	assert.True(t, a == b)
	assert.False(t, a.Equal(MustNew("example.com", "doc124")))
	assert.False(t, a.Equal(MustNew("example.org", "doc123")))
	assert.False(t, MustNew("", "x").Equal(MustNew("x", "")))
}

func TestHash(t *testing.T) {
	t.Run("equal IDs hash equally", func(t *testing.T) {
		a := MustNew("example.com", "doc123")
		b := MustParse("example.com/doc123")
		assert.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("order sensitive", func(t *testing.T) {
		assert.NotEqual(t, MustNew("a", "b").Hash(), MustNew("b", "a").Hash())
	})

	t.Run("stable", func(t *testing.T) {
		id := MustNew("example.com", "doc123")
		assert.Equal(t, id.Hash(), id.Hash())
	})
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b ID
		want int
	}{
		{"domain decides", MustNew("a", "x"), MustNew("b", "x"), -1},
		{"domain decides over id", MustNew("a", "z"), MustNew("b", "a"), -1},
		{"id breaks ties", MustNew("a", "x"), MustNew("a", "y"), -1},
		{"equal", MustNew("a", "x"), MustNew("a", "x"), 0},
		{"legacy sorts first", MustNew("", "zzz"), MustNew("a", "a"), -1},
		{"greater", MustNew("b", "x"), MustNew("a", "x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
			assert.Equal(t, tt.want == 0, tt.a.Equal(tt.b))
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	ids := []ID{
		MustNew("", "a"),
		MustNew("", "b"),
		MustNew("a", ""),
		MustNew("a", "a"),
		MustNew("a", "b"),
		MustNew("ab", "a"),
		MustNew("b", "a"),
	}

	for _, a := range ids {
		for _, b := range ids {
			ab, ba := a.Compare(b), b.Compare(a)
			assert.Equal(t, -ab, ba, "antisymmetry for %#v, %#v", a, b)
			assert.Equal(t, ab == 0, a.Equal(b), "zero iff equal for %#v, %#v", a, b)

			for _, c := range ids {
				if ab <= 0 && b.Compare(c) <= 0 {
					assert.LessOrEqual(t, a.Compare(c), 0, "transitivity for %#v, %#v, %#v", a, b, c)
				}
			}
		}
	}
}

func TestSort(t *testing.T) {
	ids := []ID{
		MustNew("b", "x"),
		MustNew("a", "y"),
		MustNew("", "z"),
		MustNew("a", "x"),
	}

	Sort(ids)

	assert.Equal(t, []ID{
		MustNew("", "z"),
		MustNew("a", "x"),
		MustNew("a", "y"),
		MustNew("b", "x"),
	}, ids)
}

func TestDedupe(t *testing.T) {
	ids := []ID{
		MustNew("b", "x"),
		MustNew("a", "x"),
		MustParse("b/x"),
		MustNew("a", "x"),
	}

	out := Dedupe(ids)

	assert.Equal(t, []ID{MustNew("a", "x"), MustNew("b", "x")}, out)
	assert.Len(t, ids, 4, "input must not be modified in length")
	assert.Equal(t, MustNew("b", "x"), ids[0], "input must not be reordered")
}

func TestZeroID(t *testing.T) {
	var id ID
	assert.True(t, id.IsZero())
	assert.True(t, id.IsLegacy())
	assert.Equal(t, "", id.String())
	assert.Equal(t, MustNew("", ""), id)
	assert.False(t, MustNew("", "x").IsZero())
}

func TestGoString(t *testing.T) {
	id := MustNew("example.com", "doc123")
	assert.Equal(t, `attachmentid.MustNew("example.com", "doc123")`, fmt.Sprintf("%#v", id))
	assert.Equal(t, "example.com/doc123", fmt.Sprintf("%v", id))
}

func TestMapKey(t *testing.T) {
	m := map[ID]int{
		MustNew("example.com", "doc123"): 1,
	}
	assert.Equal(t, 1, m[MustParse("example.com/doc123")])
}
