// Package strength scores passwords by the character classes they use.
package strength

import "unicode/utf8"

// MinLength is the shortest password that gets classified.
const MinLength = 8

// TooShortRemark is reported for passwords shorter than MinLength.
const TooShortRemark = "Password is too short. It should be at least 8 characters long."

// remarks is indexed by score-1.
var remarks = [5]string{
	"That's a very bad password. Change it as soon as possible.",
	"That's a weak password. You should consider using a tougher password.",
	"Your password is okay, but it can be improved.",
	"Your password is hard to guess. But you could make it even more secure.",
	"Now that's one hell of a strong password!!! Hackers don't have a chance guessing that password!",
}

// Bucket is the class a single character falls into.
type Bucket int

const (
	Lower Bucket = iota
	Upper
	Digit
	Whitespace
	Special
)

func (b Bucket) String() string {
	switch b {
	case Lower:
		return "lowercase"
	case Upper:
		return "uppercase"
	case Digit:
		return "digit"
	case Whitespace:
		return "whitespace"
	case Special:
		return "special"
	}
	return "unknown"
}

// Classify returns the bucket for r. Only ASCII letters and digits are
// recognized, and only U+0020 counts as whitespace; tabs, newlines and all
// non-ASCII runes are Special.
func Classify(r rune) Bucket {
	switch {
	case r >= 'a' && r <= 'z':
		return Lower
	case r >= 'A' && r <= 'Z':
		return Upper
	case r >= '0' && r <= '9':
		return Digit
	case r == ' ':
		return Whitespace
	default:
		return Special
	}
}

// Counts holds the per-bucket character counts of a password.
type Counts struct {
	Lower      int `json:"lower"`
	Upper      int `json:"upper"`
	Digit      int `json:"digit"`
	Whitespace int `json:"whitespace"`
	Special    int `json:"special"`
}

// Total is the number of characters counted.
func (c Counts) Total() int {
	return c.Lower + c.Upper + c.Digit + c.Whitespace + c.Special
}

// Get returns the count for b.
func (c Counts) Get(b Bucket) int {
	switch b {
	case Lower:
		return c.Lower
	case Upper:
		return c.Upper
	case Digit:
		return c.Digit
	case Whitespace:
		return c.Whitespace
	case Special:
		return c.Special
	}
	return 0
}

func (c *Counts) add(b Bucket) {
	switch b {
	case Lower:
		c.Lower++
	case Upper:
		c.Upper++
	case Digit:
		c.Digit++
	case Whitespace:
		c.Whitespace++
	default:
		c.Special++
	}
}

// classes is the number of buckets with at least one character.
func (c Counts) classes() int {
	n := 0
	for _, v := range []int{c.Lower, c.Upper, c.Digit, c.Whitespace, c.Special} {
		if v > 0 {
			n++
		}
	}
	return n
}

// Result is the outcome of evaluating a password.
type Result struct {
	Score  int
	Counts *Counts // nil when too short
	Remark string
}

// TooShort reports whether the password failed the length gate.
func (r Result) TooShort() bool {
	return r.Counts == nil
}

// Percent is the score on a 0-100 scale.
func (r Result) Percent() int {
	return r.Score * 20
}

// Level groups the score for display.
func (r Result) Level() Level {
	return LevelFor(r.Score)
}

// Evaluate scores password. Length is measured in runes.
func Evaluate(password string) Result {
	if utf8.RuneCountInString(password) < MinLength {
		return Result{Remark: TooShortRemark}
	}

	var c Counts
	for _, r := range password {
		c.add(Classify(r))
	}

	score := c.classes()
	return Result{
		Score:  score,
		Counts: &c,
		Remark: remarks[score-1],
	}
}
