package paths

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses dot and dotdot", "a/b/c/../d/./", "a/b/d"},
		{"relative collapses to dot", "a/b/../..", "."},
		{"absolute collapses to root", "/a/b/../..", "/"},
		{"odd names round trip", "/a./ /\\/b../.c/..d", "/a./ /\\/b../.c/..d"},
		{"unresolvable dotdot under root", "/./../a/./.././a/..", "/.."},
		{"excess dotdot kept absolute", "/../b/././../../a", "/../../a"},
		{"excess dotdot kept relative", "../b/././../../a", "../../a"},
		{"root", "/", "/"},
		{"many slashes are root", "///", "/"},
		{"literal dotdot", "..", ".."},
		{"literal root dotdot", "/..", "/.."},
		{"dotdot with trailing slash", "../", ".."},
		{"dot", ".", "."},
		{"dot slash", "./", "."},
		{"root dot", "/.", "/"},
		{"empty", "", "."},
		{"leading dot segment stripped", "./a/b", "a/b"},
		{"repeated slashes", "a//b///c", "a/b/c"},
		{"leading double slash", "//a", "/a"},
		{"trailing slashes", "/a/b//", "/a/b"},
		{"dotdot cancels last real segment only", "a/../../b", "../b"},
		{"dotdot above root in middle", "/a/../../b", "/../b"},
		{"dotdot after dotdot kept", "../../x/..", "../.."},
		{"single name", "file", "file"},
		{"hidden names untouched", "/.git/./..hidden/.", "/.git/..hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	pieces := []string{"a", "b", "c", ".", "..", "", "x y", ".d", "d."}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		n := rng.Intn(8)
		segs := make([]string, n)
		for j := range segs {
			segs[j] = pieces[rng.Intn(len(pieces))]
		}
		p := strings.Join(segs, "/")
		if rng.Intn(2) == 0 {
			p = "/" + p
		}
		if rng.Intn(4) == 0 {
			p += "/"
		}

		once := Normalize(p)
		assert.Equal(t, once, Normalize(once), "input %q", p)
	}
}

func TestNormalize_NoInteriorDotSegments(t *testing.T) {
	inputs := []string{
		"./a/./b/.", "/./.", "a/./../.", "/x/./y/../z/.", "../.././a",
	}

	for _, in := range inputs {
		out := Normalize(in)
		if out == "." {
			continue
		}
		for _, seg := range strings.Split(out, "/") {
			assert.NotEqual(t, ".", seg, "Normalize(%q) = %q", in, out)
		}
	}
}
