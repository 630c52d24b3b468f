package nlp

import (
	"strings"
	"unicode"
)

var lexicon = map[string]float64{
	"good":      0.7,
	"great":     0.8,
	"excellent": 1.0,
	"amazing":   0.6,
	"awesome":   1.0,
	"wonderful": 1.0,
	"fantastic": 0.4,
	"love":      0.5,
	"like":      0.2,
	"happy":     0.8,
	"excited":   0.4,
	"nice":      0.6,
	"best":      1.0,
	"safe":      0.5,
	"positive":  0.2,
	"confident": 0.5,
	"bad":       -0.7,
	"terrible":  -1.0,
	"awful":     -1.0,
	"horrible":  -1.0,
	"worst":     -1.0,
	"hate":      -0.8,
	"scared":    -0.6,
	"afraid":    -0.6,
	"worried":   -0.5,
	"nervous":   -0.4,
	"panic":     -0.8,
	"sad":       -0.5,
	"angry":     -0.5,
	"poor":      -0.4,
	"risky":     -0.3,
	"losing":    -0.5,
	"crash":     -0.6,
}

var negators = map[string]bool{
	"not":   true,
	"no":    true,
	"never": true,
	"don't": true,
	"isn't": true,
}

var intensifiers = map[string]bool{
	"very":      true,
	"really":    true,
	"extremely": true,
	"so":        true,
}

const (
	negationWindow    = 2
	negationFactor    = -0.5
	intensifierFactor = 1.3
)

// Polarity scores text in [-1, 1] using a small word lexicon. It returns 0 when
// no lexicon word appears.
func Polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	var matched int
	for i, tok := range tokens {
		p, ok := lexicon[tok]
		if !ok {
			continue
		}
		if i > 0 && intensifiers[tokens[i-1]] {
			p *= intensifierFactor
		}
		for j := max(0, i-negationWindow); j < i; j++ {
			if negators[tokens[j]] {
				p *= negationFactor
				break
			}
		}
		sum += p
		matched++
	}
	if matched == 0 {
		return 0
	}
	return clamp(sum/float64(matched), -1, 1)
}

func tokenize(text string) []string {
	text = strings.ReplaceAll(strings.ToLower(text), "’", "'")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
