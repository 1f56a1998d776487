package pattern

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type patternSuite struct{}

var _ = check.Suite(&patternSuite{})

func (s *patternSuite) TestParseHeader(c *check.C) {
	h, err := ParseHeader("# number=3 length=4 file=text.txt\n")
	c.Assert(err, check.IsNil)
	c.Check(h, check.DeepEquals, Header{Number: 3, Length: 4, File: "text.txt"})
}

func (s *patternSuite) TestParseHeaderReordered(c *check.C) {
	h, err := ParseHeader("#  length=7\tnumber=2 extra=yes file=dir with space/t.txt  \r\n")
	c.Assert(err, check.IsNil)
	c.Check(h.Number, check.Equals, 2)
	c.Check(h.Length, check.Equals, 7)
	c.Check(h.File, check.Equals, "dir with space/t.txt")
}

func (s *patternSuite) TestParseHeaderWithoutFile(c *check.C) {
	h, err := ParseHeader("# number=0 length=0")
	c.Assert(err, check.IsNil)
	c.Check(h, check.DeepEquals, Header{})
}

func (s *patternSuite) TestParseHeaderErrors(c *check.C) {
	for _, line := range []string{
		"",
		"number=1 length=2",
		"# length=2 file=x",
		"# number=1 file=x",
		"# number=x length=2",
		"# number=1 length=-2",
		"# number=1 number=2 length=2",
		"# number=1 length=2 length=3",
		"# number=1 bogus length=2",
		"# =1 number=1 length=2",
	} {
		_, err := ParseHeader(line)
		var he *HeaderError
		c.Check(errors.As(err, &he), check.Equals, true, check.Commentf("line %q", line))
	}
}

func (s *patternSuite) TestHeaderStringRoundTrip(c *check.C) {
	h := Header{Number: 12, Length: 5, File: "/data/dna.50MB"}
	c.Check(h.String(), check.Equals, "# number=12 length=5 file=/data/dna.50MB")
	back, err := ParseHeader(h.String())
	c.Assert(err, check.IsNil)
	c.Check(back, check.DeepEquals, h)
}

func (s *patternSuite) TestRead(c *check.C) {
	set, err := Read(strings.NewReader("# number=3 length=2 file=x\nACGTTT"))
	c.Assert(err, check.IsNil)
	c.Assert(set.Len(), check.Equals, 3)
	c.Check(string(set.At(0)), check.Equals, "AC")
	c.Check(string(set.At(1)), check.Equals, "GT")
	c.Check(string(set.At(2)), check.Equals, "TT")
}

func (s *patternSuite) TestReadPatternsMayContainNewlines(c *check.C) {
	set, err := Read(strings.NewReader("# number=2 length=3 file=x\nA\nCG\n\n"))
	c.Assert(err, check.IsNil)
	c.Check(string(set.At(0)), check.Equals, "A\nC")
	c.Check(string(set.At(1)), check.Equals, "G\n\n")
}

func (s *patternSuite) TestReadEmptySet(c *check.C) {
	set, err := Read(strings.NewReader("# number=0 length=10 file=x\n"))
	c.Assert(err, check.IsNil)
	c.Check(set.Len(), check.Equals, 0)
}

func (s *patternSuite) TestReadTruncated(c *check.C) {
	_, err := Read(strings.NewReader("# number=3 length=2 file=x\nACGT"))
	c.Check(errors.Is(err, ErrTruncated), check.Equals, true)
}

func (s *patternSuite) TestReadTrailing(c *check.C) {
	_, err := Read(strings.NewReader("# number=1 length=2 file=x\nACG"))
	c.Check(errors.Is(err, ErrTrailingData), check.Equals, true)
}

func (s *patternSuite) TestReadMalformedHeader(c *check.C) {
	_, err := Read(strings.NewReader("# count=1 length=2 file=x\nAC"))
	var he *HeaderError
	c.Check(errors.As(err, &he), check.Equals, true)

	_, err = Read(strings.NewReader(""))
	c.Check(errors.As(err, &he), check.Equals, true)
}

func (s *patternSuite) TestWriteRejectsSizeMismatch(c *check.C) {
	var b bytes.Buffer
	err := Write(&b, &Set{Header: Header{Number: 2, Length: 2}, Data: []byte("ACG")})
	c.Check(err, check.ErrorMatches, "pattern: set holds 3 bytes.*")
}

func (s *patternSuite) TestFileRoundTrip(c *check.C) {
	path := filepath.Join(c.MkDir(), "p.patt")
	in := &Set{Header: Header{Number: 2, Length: 3, File: "t.txt"}, Data: []byte{'A', 0xe9, 'C', 0xff, '\n', 'G'}}
	c.Assert(WriteFile(path, in), check.IsNil)

	raw, err := os.ReadFile(path)
	c.Assert(err, check.IsNil)
	c.Check(string(raw), check.Equals, "# number=2 length=3 file=t.txt\n"+string(in.Data))

	out, err := ReadFile(path)
	c.Assert(err, check.IsNil)
	c.Check(out, check.DeepEquals, in)
}

func (s *patternSuite) TestSample(c *check.C) {
	text := []byte("ACGTTGCAAGGCTTACCGATNNACGT")
	rng := rand.New(rand.NewSource(42))
	set, err := Sample(rng, text, 100, 5)
	c.Assert(err, check.IsNil)
	c.Check(set.Number, check.Equals, 100)
	c.Check(set.Length, check.Equals, 5)
	c.Check(set.Data, check.HasLen, 500)
	for i := 0; i < set.Len(); i++ {
		c.Check(bytes.Contains(text, set.At(i)), check.Equals, true, check.Commentf("pattern %d %q", i, set.At(i)))
	}
}

func (s *patternSuite) TestSampleWholeText(c *check.C) {
	text := []byte("ACGT")
	set, err := Sample(rand.New(rand.NewSource(1)), text, 3, 4)
	c.Assert(err, check.IsNil)
	c.Check(string(set.Data), check.Equals, "ACGTACGTACGT")
}

func (s *patternSuite) TestSampleDeterministicForSeed(c *check.C) {
	text := []byte(strings.Repeat("ACGTTGCA", 64))
	a, err := Sample(rand.New(rand.NewSource(7)), text, 20, 9)
	c.Assert(err, check.IsNil)
	b, err := Sample(rand.New(rand.NewSource(7)), text, 20, 9)
	c.Assert(err, check.IsNil)
	c.Check(a.Data, check.DeepEquals, b.Data)
}

func (s *patternSuite) TestSampleErrors(c *check.C) {
	rng := rand.New(rand.NewSource(1))
	_, err := Sample(rng, []byte("ACGT"), 1, 5)
	c.Check(errors.Is(err, ErrPatternTooLong), check.Equals, true)
	_, err = Sample(rng, []byte("ACGT"), -1, 2)
	c.Check(errors.Is(err, ErrInvalidCount), check.Equals, true)
	_, err = Sample(rng, []byte("ACGT"), 1, 0)
	c.Check(errors.Is(err, ErrInvalidLength), check.Equals, true)
	_, err = Sample(rng, nil, 1, 1)
	c.Check(errors.Is(err, ErrPatternTooLong), check.Equals, true)
}
