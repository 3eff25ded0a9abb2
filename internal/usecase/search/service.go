// Package search orchestrates query classification, parallel retrieval
// from the lexical and vector backends, result fusion and highlight
// extraction.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rajatjain/cataloguesearch-sub001/internal/domain"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/hit"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/request"
	"github.com/rajatjain/cataloguesearch-sub001/internal/logger"
	"github.com/rajatjain/cataloguesearch-sub001/internal/metrics"
	"github.com/rajatjain/cataloguesearch-sub001/internal/usecase/highlight"
)

// Match is one fused hit with its display highlight terms.
type Match struct {
	Hit   hit.Fused
	Terms []string
}

// Response is one page of fused results.
type Response struct {
	Matches  []Match
	Total    int
	Language string
}

// Options tune retrieval and fusion.
type Options struct {
	// FetchDepth is how many candidates each backend is asked for
	// before fusion.
	FetchDepth int
	// DefaultLanguage is used when classification cannot pick a tag.
	DefaultLanguage string
	// LexicalWeight and VectorWeight feed the weighted-sum strategy.
	LexicalWeight float64
	VectorWeight  float64
}

// Service answers search requests against the per-language indexes.
type Service struct {
	repo       Repository
	classifier Classifier
	embed      Embedder
	strategy   Strategy
	opts       Options
}

// New creates a search service with the weighted-sum fusion strategy.
func New(repo Repository, classifier Classifier, embed Embedder, opts Options) *Service {
	if opts.FetchDepth <= 0 {
		opts.FetchDepth = 50
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = "hi"
	}
	if opts.LexicalWeight <= 0 && opts.VectorWeight <= 0 {
		opts.LexicalWeight = DefaultLexicalWeight
		opts.VectorWeight = DefaultVectorWeight
	}
	return &Service{
		repo:       repo,
		classifier: classifier,
		embed:      embed,
		strategy:   WeightedSum{Lexical: opts.LexicalWeight, Vector: opts.VectorWeight},
		opts:       opts,
	}
}

// WithStrategy substitutes the fusion strategy.
func (s *Service) WithStrategy(strategy Strategy) *Service {
	s.strategy = strategy
	return s
}

// Search runs the full pipeline for one query: classify its language,
// fan out to both backends, fuse the ranked lists and extract highlight
// terms for the returned page.
//
// The backends are queried in parallel. If one fails its list is treated
// as empty and the other still answers; only both failing fails the
// search.
func (s *Service) Search(ctx context.Context, req *request.Request) (Response, error) {
	log := logger.FromContext(ctx)

	lang := req.Language()
	if lang == "" {
		lang = s.classifier.Classify(req.Query(), s.opts.DefaultLanguage)
	} else if !s.classifier.Supported(lang) {
		return Response{}, fmt.Errorf("%w: %q", domain.ErrLanguageNotSupported, lang)
	}
	metrics.LanguageDetectedTotal.WithLabelValues(lang).Inc()

	emb, err := s.embed.Embed(ctx, req.Query())
	if err != nil {
		// Lexical retrieval can still answer without a query vector.
		log.Warn("query embedding failed, vector backend skipped", zap.Error(err))
	}

	var (
		lexicalHits []hit.Hit
		vectorHits  []hit.Hit
		lexicalErr  error
		vectorErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lexicalHits, lexicalErr = s.repo.SearchLexical(gctx, lang, req, s.opts.FetchDepth)
		return nil
	})
	if err == nil {
		g.Go(func() error {
			vectorHits, vectorErr = s.repo.SearchVector(gctx, lang, emb.Embedding, s.opts.FetchDepth)
			return nil
		})
	} else {
		vectorErr = err
	}
	_ = g.Wait()

	if lexicalErr != nil && vectorErr != nil {
		return Response{}, fmt.Errorf("%w: lexical: %v, vector: %v",
			domain.ErrAllBackendsFailed, lexicalErr, vectorErr)
	}
	if lexicalErr != nil {
		log.Warn("lexical backend failed, degrading to vector only", zap.Error(lexicalErr))
		lexicalHits = nil
	}
	if vectorErr != nil {
		log.Warn("vector backend failed, degrading to lexical only", zap.Error(vectorErr))
		vectorHits = nil
	}

	metrics.FusionCandidates.Observe(float64(len(lexicalHits) + len(vectorHits)))

	page, total := Fuse(lexicalHits, vectorHits, s.strategy, req.PageSize(), req.PageNumber())

	matches := make([]Match, len(page))
	for i := range page {
		matches[i] = Match{
			Hit:   page[i],
			Terms: highlight.Terms([]string{page[i].Snippet()}, req.ExactPhrase()),
		}
	}

	log.Debug("search fused",
		zap.String("language", lang),
		zap.Int("lexical_hits", len(lexicalHits)),
		zap.Int("vector_hits", len(vectorHits)),
		zap.Int("total", total),
		zap.Int("page", req.PageNumber()),
	)

	return Response{Matches: matches, Total: total, Language: lang}, nil
}
