// Package language classifies query and document text into the small
// set of language tags the search indexes are built for.
package language

import (
	"go.uber.org/zap"
)

// Supported language tags.
const (
	Hindi    = "hi"
	Gujarati = "gu"
	English  = "en"
)

// familyGroups collapses detected codes of script-related languages onto
// the canonical tag whose analyzer handles them. Nepali, Marathi and
// Sanskrit share the Devanagari script with Hindi and are tokenized
// identically downstream. Gujarati and English map onto themselves.
var familyGroups = map[string]string{
	"hi": Hindi,
	"ne": Hindi,
	"mr": Hindi,
	"sa": Hindi,
	"gu": Gujarati,
	"en": English,
}

// Detector identifies the language of a text. Detect returns an ISO
// 639-1 code in lower case, or an error when the text carries too little
// signal to classify.
type Detector interface {
	Detect(text string) (string, error)
}

// Classifier maps free-form text to a supported language tag.
type Classifier struct {
	detector Detector
	logger   *zap.Logger
}

// New creates a classifier around a detector.
func New(detector Detector, logger *zap.Logger) *Classifier {
	return &Classifier{detector: detector, logger: logger}
}

// Supported reports whether tag is one of the canonical tags an index
// exists for. Family members like "ne" or "sa" are detection inputs, not
// index tags, so they are not supported here.
func (c *Classifier) Supported(tag string) bool {
	switch tag {
	case Hindi, Gujarati, English:
		return true
	}
	return false
}

// Classify returns the supported tag for text, falling back to
// defaultLanguage on empty input, detection failure, or a detected
// language outside the supported families. It never fails.
func (c *Classifier) Classify(text, defaultLanguage string) string {
	if text == "" {
		return defaultLanguage
	}

	code, err := c.detector.Detect(text)
	if err != nil {
		c.logger.Debug("language detection failed, using default",
			zap.String("default", defaultLanguage),
			zap.Error(err),
		)
		return defaultLanguage
	}

	tag, ok := familyGroups[code]
	if !ok {
		c.logger.Debug("detected language outside supported families, using default",
			zap.String("detected", code),
			zap.String("default", defaultLanguage),
		)
		return defaultLanguage
	}

	return tag
}
