package openai

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/statroute/internal/domain/route"
	"github.com/kailas-cloud/statroute/internal/metrics"
)

// instruction is the short fixed prompt; the model replies with a single token.
const instruction = `You route basketball questions to a retrieval backend.
Reply with exactly one token and nothing else:
sql_only - the question asks for statistics, rankings, counts or numeric records
vector_only - the question asks for explanations, opinions, history or context
hybrid - the question needs both`

// Classifier asks a chat-completion model for a routing verdict. It is the
// fallback an orchestrator may use when the heuristic router declines to
// commit; any failure or unparseable reply defaults to sql_only.
type Classifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// Config holds the fallback classifier settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClassifier creates an OpenAI-compatible fallback classifier.
func NewClassifier(cfg *Config) *Classifier {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Classifier{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Classify submits the raw query and parses the single-token verdict.
// It never returns an error: the contract is fail-open to sql_only.
func (c *Classifier) Classify(ctx context.Context, query string) route.Verdict {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		MaxTokens:   8,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		metrics.FallbackRequestsTotal.WithLabelValues(c.model, "error").Inc()
		c.logger.Warn("fallback classification failed, defaulting to sql_only", zap.Error(err))
		return route.SQLOnly
	}

	if len(resp.Choices) == 0 {
		metrics.FallbackRequestsTotal.WithLabelValues(c.model, "empty").Inc()
		return route.SQLOnly
	}

	verdict, ok := ParseVerdict(resp.Choices[0].Message.Content)
	if !ok {
		metrics.FallbackRequestsTotal.WithLabelValues(c.model, "invalid").Inc()
		c.logger.Warn("fallback returned unrecognized verdict, defaulting to sql_only",
			zap.String("reply", resp.Choices[0].Message.Content),
		)
		return route.SQLOnly
	}

	metrics.FallbackRequestsTotal.WithLabelValues(c.model, "success").Inc()
	return verdict
}

// ParseVerdict extracts a verdict token from a model reply, tolerating case,
// surrounding punctuation and quoting. Returns ok=false for anything else.
func ParseVerdict(reply string) (route.Verdict, bool) {
	token := strings.ToLower(strings.TrimSpace(reply))
	token = strings.Trim(token, "\"'`.!: \n\t")
	// Some models echo "verdict: hybrid"; keep the last field.
	if fields := strings.Fields(token); len(fields) > 0 {
		token = fields[len(fields)-1]
	}

	v := route.Verdict(token)
	if v.IsValid() {
		return v, true
	}
	return "", false
}
