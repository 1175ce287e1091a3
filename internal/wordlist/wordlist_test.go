package wordlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dicepass/dicepass/internal/dice"
	"github.com/stretchr/testify/suite"
)

type WordListTestSuite struct {
	suite.Suite
}

func TestWordListTestSuite(t *testing.T) {
	suite.Run(t, new(WordListTestSuite))
}

// load builds a word list from cfg and the given file content,
// requiring the load to succeed.
func (s *WordListTestSuite) load(cfg *Config, content string) *WordList {
	wordList := New(cfg)
	s.Require().NoError(wordList.Load(strings.NewReader(content)))
	return wordList
}

func (s *WordListTestSuite) TestNewDefaults() {
	wordList := New(nil)

	s.Equal(DefaultDiceCount, wordList.DiceCount())
	s.Equal(DefaultDiceSides, wordList.DiceSides())
}

func (s *WordListTestSuite) TestLoadParsesDirectives() {
	wordList := s.load(nil, "DICE=2\nSIDES=4\n\n11 alpha\n")

	s.Equal(2, wordList.DiceCount())
	s.Equal(4, wordList.DiceSides())
}

func (s *WordListTestSuite) TestLoadDirectiveSeparatorsAndCase() {
	wordList := s.load(nil, "dice : 3\nSideS=4\n111 alpha\n")

	s.Equal(3, wordList.DiceCount())
	s.Equal(4, wordList.DiceSides())
}

func (s *WordListTestSuite) TestLoadIgnoresDirectivesAfterWordShapedLine() {
	// "999 bogus" has the shape of a word entry even though its
	// roll-key is invalid, so the SIDES directive below it is locked
	// out.
	wordList := s.load(nil, "999 bogus\nSIDES=4\n11111 alpha\n")

	s.Equal(DefaultDiceSides, wordList.DiceSides())
}

func (s *WordListTestSuite) TestLoadInvalidSidesDirective() {
	wordList := New(nil)
	err := wordList.Load(strings.NewReader("SIDES=21\n11111 alpha\n"))

	s.ErrorIs(err, dice.ErrInvalidSides)
}

func (s *WordListTestSuite) TestLoadSkipsMalformedEntries() {
	// Wrong-length keys, out-of-range digits, and non-entry lines are
	// dropped without error; the remaining entries still cover the
	// whole roll-key space.
	content := "1 apple\n2 banana\n3 cherry\n12 pear\nnot an entry\n"
	wordList := s.load(&Config{DiceCount: 1, DiceSides: 2}, content)

	s.NoError(wordList.Verify())
}

func (s *WordListTestSuite) TestLoadKeepsWordsWithSpaces() {
	wordList := s.load(&Config{
		DiceCount: 1,
		Entropy:   bytes.NewReader([]byte{0}),
	}, "1 foo bar baz\n2 b\n3 c\n4 d\n5 e\n6 f\n")

	password, err := wordList.Generate(1)
	s.Require().NoError(err)
	s.Equal([]string{"1"}, password.Rolls)
	s.Equal([]string{"foo bar baz"}, password.Words)
}

func (s *WordListTestSuite) TestVerifyNotLoaded() {
	wordList := New(nil)

	s.ErrorIs(wordList.Verify(), ErrNotLoaded)
}

func (s *WordListTestSuite) TestVerifyMissingKey() {
	wordList := s.load(nil, "DICE=2\nSIDES=2\n11 a\n12 b\n21 c\n")

	err := wordList.Verify()
	s.Require().Error(err)
	s.ErrorIs(err, ErrIncompleteCoverage)
	s.Contains(err.Error(), `"22"`)
}

func (s *WordListTestSuite) TestVerifyReportsFirstGap() {
	wordList := s.load(nil, "DICE=2\nSIDES=2\n22 d\n")

	err := wordList.Verify()
	s.Require().Error(err)
	s.Contains(err.Error(), `"11"`)
}

func (s *WordListTestSuite) TestVerifyFullCoverage() {
	wordList := s.load(nil, "DICE=1\nSIDES=2\n1 a\n2 b\n")

	s.NoError(wordList.Verify())
	// Verify is read-only, so a second pass gives the same answer.
	s.NoError(wordList.Verify())
}

func (s *WordListTestSuite) TestGenerateZeroWords() {
	wordList := s.load(nil, "DICE=1\nSIDES=2\n1 a\n2 b\n")

	password, err := wordList.Generate(0)
	s.Require().NoError(err)
	s.Empty(password.Rolls)
	s.Empty(password.Words)
}

func (s *WordListTestSuite) TestGenerateUnloaded() {
	wordList := New(nil)

	password, err := wordList.Generate(3)
	s.Require().NoError(err)
	s.Empty(password.Rolls)
	s.Empty(password.Words)
}

func (s *WordListTestSuite) TestGenerateRollKeyShape() {
	var content strings.Builder
	content.WriteString("DICE=2\nSIDES=4\n")
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			content.WriteString(string(rune('0'+i)) + string(rune('0'+j)) + " word\n")
		}
	}
	wordList := s.load(nil, content.String())
	s.Require().NoError(wordList.Verify())

	password, err := wordList.Generate(5)
	s.Require().NoError(err)
	s.Require().Len(password.Rolls, 5)
	s.Require().Len(password.Words, 5)

	for i, roll := range password.Rolls {
		s.Len(roll, 2)
		for _, c := range roll {
			s.GreaterOrEqual(int(c-'0'), 1)
			s.LessOrEqual(int(c-'0'), 4)
		}
		s.Equal("word", password.Words[i])
	}
}

func (s *WordListTestSuite) TestGenerateWithScriptedEntropy() {
	// Bytes 0, 1, and 5 map straight to faces 1, 2, and 6 on a
	// six-sided die, making the picked words predictable.
	wordList := s.load(&Config{
		DiceCount: 1,
		Entropy:   bytes.NewReader([]byte{0, 1, 5}),
	}, "1 alpha\n2 bravo\n3 charlie\n4 delta\n5 echo\n6 foxtrot\n")

	password, err := wordList.Generate(3)
	s.Require().NoError(err)
	s.Equal([]string{"1", "2", "6"}, password.Rolls)
	s.Equal([]string{"alpha", "bravo", "foxtrot"}, password.Words)
}

func (s *WordListTestSuite) TestGenerateUnmappedRollYieldsEmptyWord() {
	// Only face 1 has a word; a roll of 2 is looked up anyway and
	// comes back empty. Verify would catch this, Generate does not.
	wordList := s.load(&Config{
		DiceCount: 1,
		Entropy:   bytes.NewReader([]byte{1}),
	}, "1 alpha\n")

	password, err := wordList.Generate(1)
	s.Require().NoError(err)
	s.Equal([]string{"2"}, password.Rolls)
	s.Equal([]string{""}, password.Words)
}

func (s *WordListTestSuite) TestGenerateEntropyFailure() {
	wordList := s.load(&Config{
		DiceCount: 1,
		Entropy:   bytes.NewReader(nil),
	}, "1 alpha\n2 bravo\n3 charlie\n4 delta\n5 echo\n6 foxtrot\n")

	password, err := wordList.Generate(1)
	s.Error(err)
	s.Nil(password)
}
