package statroute

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/statroute/internal/domain/route"
	openaiTransport "github.com/kailas-cloud/statroute/internal/transport/openai"
)

// Verdict is the three-way token contract shared by the heuristic router and
// the generative fallback classifier, so an orchestrator can swap one for the
// other.
type Verdict string

// Fallback verdict tokens.
const (
	SQLOnly    Verdict = Verdict(route.SQLOnly)
	VectorOnly Verdict = Verdict(route.VectorOnly)
	BothTools  Verdict = Verdict(route.Both)
)

// QueryType converts the verdict to the equivalent routing verdict.
func (v Verdict) QueryType() QueryType {
	return QueryType(route.Verdict(v).Type())
}

// FallbackVerdict converts a heuristic QueryType to the fallback token.
func FallbackVerdict(t QueryType) Verdict {
	return Verdict(route.VerdictFromType(route.Type(t)))
}

// Fallback asks a generative model for a routing verdict. Orchestrators may
// call it when they judge the heuristic verdict unreliable; it fails open to
// SQLOnly on any transport error or unparseable reply.
type Fallback struct {
	classifier *openaiTransport.Classifier
}

// FallbackConfig holds the generative fallback settings.
type FallbackConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewFallback creates the generative fallback classifier.
func NewFallback(cfg FallbackConfig) *Fallback {
	return &Fallback{
		classifier: openaiTransport.NewClassifier(&openaiTransport.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
			Logger:  cfg.Logger,
		}),
	}
}

// Classify submits the raw query to the model and returns the parsed verdict.
func (f *Fallback) Classify(ctx context.Context, query string) Verdict {
	return Verdict(f.classifier.Classify(ctx, query))
}
