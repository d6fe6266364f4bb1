package engine

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/founderlink/backend/internal/chatbot"
	"github.com/founderlink/backend/internal/config"
	"github.com/founderlink/backend/internal/model"
	"github.com/founderlink/backend/internal/sanitize"
	"github.com/founderlink/backend/internal/scoring"
	"github.com/founderlink/backend/internal/search"
	"github.com/founderlink/backend/internal/sentiment"
	"github.com/founderlink/backend/internal/store"
	"github.com/founderlink/backend/internal/summarize"
	"github.com/founderlink/backend/internal/tags"
)

// Engine ties the relevance components to the record store. Every
// operation is stateless per call; the only mutable state is the request
// counter kept for the status endpoint.
type Engine struct {
	Config  *config.Config
	Logger  *logrus.Entry
	Store   store.RecordStore
	Chatbot *chatbot.Router

	mu    sync.Mutex
	Stats EngineStats
}

type EngineStats struct {
	RequestsServed int64
	StartTime      time.Time
}

func NewEngine(cfg *config.Config, logger *logrus.Entry, st store.RecordStore) (*Engine, error) {
	responses, err := chatbot.LoadResponses(cfg.Chatbot.ResponsesPath)
	if err != nil {
		logger.WithError(err).Warn("Failed to load chatbot response overrides, using defaults")
	}

	router := chatbot.NewRouter(st, logger, responses)
	if cfg.Chatbot.ResultLimit > 0 {
		router.Limit = cfg.Chatbot.ResultLimit
	}

	return &Engine{
		Config:  cfg,
		Logger:  logger,
		Store:   st,
		Chatbot: router,
		Stats:   EngineStats{StartTime: time.Now()},
	}, nil
}

// SimilaritySearch ranks stored startups against a free-text query.
func (e *Engine) SimilaritySearch(query string, limit int) ([]search.ScoredStartup, error) {
	e.countRequest()
	candidates, err := e.Store.ListStartups()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.Config.Engine.DefaultLimit
	}
	return search.FindSimilarStartups(sanitize.StripHTML(query), candidates, limit), nil
}

// Recommend ranks stored startups against an investor's profile, with a
// popularity fallback for investors with no profile signal.
func (e *Engine) Recommend(investor *model.Investor, limit int) ([]search.ScoredStartup, error) {
	e.countRequest()
	candidates, err := e.Store.ListStartups()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.Config.Engine.DefaultLimit
	}
	return search.RecommendForInvestor(investor, candidates, limit), nil
}

// Summarize produces an extractive summary of the text.
func (e *Engine) Summarize(text string, maxSentences int) string {
	e.countRequest()
	if maxSentences <= 0 {
		maxSentences = e.Config.Engine.SummarySentences
	}
	return summarize.Summarize(sanitize.StripHTML(text), maxSentences)
}

// Sentiment scores text against the fixed lexicons; a rating in [1,5]
// blends in at a fixed weight.
func (e *Engine) Sentiment(text string, rating float64) sentiment.Result {
	e.countRequest()
	if rating != 0 {
		return sentiment.AnalyzeWithRating(text, rating)
	}
	return sentiment.Analyze(text)
}

// ReviewSentiment scores a stored review, using its rating when present.
func (e *Engine) ReviewSentiment(review *model.Review) sentiment.Result {
	return e.Sentiment(review.Comment, float64(review.Rating))
}

// Tags extracts the highest-frequency content words from text.
func (e *Engine) Tags(text string, maxTags int) []string {
	e.countRequest()
	if maxTags <= 0 {
		maxTags = e.Config.Engine.MaxTags
	}
	return tags.Generate(sanitize.StripHTML(text), maxTags)
}

// Compatibility scores an investor/startup pairing on a 0-100 scale.
func (e *Engine) Compatibility(investor *model.Investor, startup *model.Startup) int {
	e.countRequest()
	return scoring.Compatibility(investor, startup)
}

// Potential computes the investment potential heuristic for a startup.
func (e *Engine) Potential(startup *model.Startup) scoring.PotentialResult {
	e.countRequest()
	return scoring.Potential(startup)
}

// Chat routes a free-text query through the chatbot classifier.
func (e *Engine) Chat(query string, user *model.Investor) (*chatbot.Reply, error) {
	e.countRequest()
	return e.Chatbot.Route(query, user)
}

// RequestsServed reports how many engine operations have run.
func (e *Engine) RequestsServed() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Stats.RequestsServed
}

func (e *Engine) countRequest() {
	e.mu.Lock()
	e.Stats.RequestsServed++
	e.mu.Unlock()
}
