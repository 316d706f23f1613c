package generator

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestAlphabet(t *testing.T) {
	if len(Alphabet) != 94 {
		t.Fatalf("alphabet length = %d, want 94", len(Alphabet))
	}

	seen := make(map[rune]bool)
	for _, r := range Alphabet {
		if r < '!' || r > '~' {
			t.Errorf("alphabet contains non-printable-ascii %q", r)
		}
		if seen[r] {
			t.Errorf("alphabet contains %q twice", r)
		}
		seen[r] = true
	}

	// every printable ASCII character except space
	for r := '!'; r <= '~'; r++ {
		if !seen[r] {
			t.Errorf("alphabet missing %q", r)
		}
	}
}

func TestPasswordLength(t *testing.T) {
	g := New()

	for _, n := range []int{1, 8, DefaultLength, 64, 256} {
		pw, err := g.Password(n)
		if err != nil {
			t.Fatalf("Password(%d): %v", n, err)
		}
		if len(pw) != n {
			t.Errorf("Password(%d) length = %d", n, len(pw))
		}
		for _, c := range pw {
			if !strings.ContainsRune(Alphabet, c) {
				t.Errorf("Password(%d) contains %q outside alphabet", n, c)
			}
		}
	}
}

func TestPasswordInvalidLength(t *testing.T) {
	g := New()

	for _, n := range []int{0, -1, -100} {
		pw, err := g.Password(n)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Password(%d) err = %v, want ErrInvalidLength", n, err)
		}
		if pw != "" {
			t.Errorf("Password(%d) = %q, want empty", n, pw)
		}
	}
}

func TestPasswordUniqueness(t *testing.T) {
	g := New()
	seen := make(map[string]bool)

	for range 1000 {
		pw, err := g.Password(DefaultLength)
		if err != nil {
			t.Fatal(err)
		}
		if seen[pw] {
			t.Fatalf("duplicate password %q", pw)
		}
		seen[pw] = true
	}
}

func TestPasswordDistribution(t *testing.T) {
	g := New()
	counts := make(map[byte]int)

	// 94 * 1000 characters, expect ~1000 per character (stddev ~31)
	const perChar = 1000
	total := len(Alphabet) * perChar
	for drawn := 0; drawn < total; drawn += 94 {
		pw, err := g.Password(94)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < len(pw); i++ {
			counts[pw[i]]++
		}
	}

	for i := 0; i < len(Alphabet); i++ {
		c := counts[Alphabet[i]]
		if c < perChar*7/10 || c > perChar*13/10 {
			t.Errorf("character %q drawn %d times, want ~%d", Alphabet[i], c, perChar)
		}
	}
}

func TestPasswordConcurrent(t *testing.T) {
	g := New()
	var wg sync.WaitGroup
	errs := make(chan error, 16)

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				pw, err := g.Password(DefaultLength)
				if err != nil {
					errs <- err
					return
				}
				if len(pw) != DefaultLength {
					errs <- errors.New("wrong length")
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
