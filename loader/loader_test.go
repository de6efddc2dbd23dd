package loader_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/loader"
)

func TestReadValues_SkipsMalformed(t *testing.T) {
	in := "5 3 x8 8\n1\t4 99999999999999999999999 -2\n\n7"
	got, err := loader.ReadValues(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, 1, 4, -2, 7}, got)
}

func TestRead_LongLinesAreParsed(t *testing.T) {
	junk := strings.Repeat("x", 200_000)
	got, err := loader.ReadValues(strings.NewReader("1 " + junk + " 2\n3"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	tr, err := loader.ReadTriples(strings.NewReader(junk + "\n0 1 2\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []loader.Triple{{From: 0, To: 1, Weight: 2}}, tr)
}

func TestRead_FailureKeepsPrefix(t *testing.T) {
	r := io.MultiReader(strings.NewReader("4 5\n"), iotest.ErrReader(errors.New("disk gone")))
	got, err := loader.ReadValues(r)
	assert.True(t, errors.Is(err, loader.ErrFileIO))
	assert.Equal(t, []int{4, 5}, got)
}

func TestReadTriples(t *testing.T) {
	in := strings.Join([]string{
		"0 1 4",
		"1 2 2",
		"0 2 5",
		"3 3 1",   // self loop
		"1 4 0",   // weight must be positive
		"1 4",     // too few
		"1 4 2 9", // too many
		"a b c",   // not numbers
		"-1 2 3",  // negative id
		"  7   8  3 ",
	}, "\n")
	got, err := loader.ReadTriples(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []loader.Triple{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 5},
		{From: 7, To: 8, Weight: 3},
	}, got)
}

func TestOpen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(p, []byte("10 20\n30\n"), 0o600))

	f, err := loader.Open(p)
	require.NoError(t, err)
	defer f.Close()
	vals, err := loader.ReadValues(f)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, vals)
}

func TestMissingFile(t *testing.T) {
	_, err := loader.Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, loader.ErrFileIO))
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestParseInt(t *testing.T) {
	v, err := loader.ParseInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = loader.ParseInt("4x")
	assert.True(t, errors.Is(err, loader.ErrMalformed))
}
