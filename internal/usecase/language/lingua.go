package language

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LinguaDetector identifies languages with the lingua statistical models.
// Restricting the candidate set to the languages the corpus actually
// contains keeps detection reliable on short queries.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector over the corpus languages.
func NewLinguaDetector() *LinguaDetector {
	languages := []lingua.Language{
		lingua.Hindi,
		lingua.Marathi,
		lingua.Gujarati,
		lingua.English,
	}
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect implements Detector.
func (d *LinguaDetector) Detect(text string) (string, error) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", fmt.Errorf("language not recognized")
	}
	return strings.ToLower(lang.IsoCode639_1().String()), nil
}
