package greeting

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"gopkg.microglot.org/maybe.go/optional"
)

func TestLanguage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  optional.Optional[string]
		want language.Tag
	}{
		{
			name: "absent falls back to english",
			raw:  optional.None[string](),
			want: language.English,
		},
		{
			name: "turkish",
			raw:  optional.Some("tr"),
			want: language.Turkish,
		},
		{
			name: "german",
			raw:  optional.Some("de"),
			want: language.German,
		},
		{
			name: "unparseable falls back to english",
			raw:  optional.Some("!!"),
			want: language.English,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Language(tc.raw))
		})
	}
}

func TestGreet(t *testing.T) {
	t.Parallel()

	t.Run("titles the name", func(t *testing.T) {
		t.Parallel()
		r := Greet(optional.Some("ace"), language.English)
		require.Equal(t, "Hello, Ace!", r.MustValue())
	})

	t.Run("uses the casing rules of the tag", func(t *testing.T) {
		t.Parallel()
		r := Greet(optional.Some("iris"), language.Turkish)
		require.Equal(t, "Hello, İris!", r.MustValue())
	})

	t.Run("missing name is a fault", func(t *testing.T) {
		t.Parallel()
		r := Greet(optional.None[string](), language.English)
		require.True(t, r.IsErr())
		require.Equal(t, CodeNameMissing, r.MustReason().Code())
	})
}

func TestHeadline(t *testing.T) {
	t.Parallel()

	t.Run("shouts the name", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "ACE", Headline(optional.Some("ace"), language.English))
	})

	t.Run("uses the casing rules of the tag", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "İRİS", Headline(optional.Some("iris"), language.Turkish))
	})

	t.Run("missing name is a placeholder", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "?", Headline(optional.None[string](), language.English))
	})
}

func TestAge(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 42, Age(optional.Some("42")).MustValue())
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		r := Age(optional.None[string]())
		require.True(t, r.IsErr())
		require.Equal(t, CodeAgeMissing, r.MustReason().Code())
	})

	t.Run("not a number", func(t *testing.T) {
		t.Parallel()
		r := Age(optional.Some("forty"))
		require.True(t, r.IsErr())
		require.Equal(t, CodeAgeInvalid, r.MustReason().Code())

		numErr := &strconv.NumError{}
		require.ErrorAs(t, r.MustReason(), &numErr)
	})

	t.Run("not positive", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"-3", "0"} {
			r := Age(optional.Some(raw))
			require.True(t, r.IsErr())
			require.Equal(t, CodeAgeInvalid, r.MustReason().Code())
			require.Contains(t, r.MustReason().Message(), "positive")
		}
	})
}

func TestWithAge(t *testing.T) {
	t.Parallel()

	t.Run("appends the age", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, Ace! You are 42.", WithAge("Hello, Ace!", optional.Some(42)))
	})

	t.Run("absent age leaves the line alone", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, Ace!", WithAge("Hello, Ace!", optional.None[int]()))
	})
}
