// Package grading evaluates incident resolutions on a 0-100 scale. The
// primary grader calls an OpenAI chat model; a deterministic fallback
// takes over whenever the model is unavailable or fails, so callers always
// receive a usable grade and never observe a grading error.
package grading

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Grading methods reported in Result.Method.
const (
	MethodLLM      = "llm"
	MethodFallback = "fallback"
)

// Threshold above which a graded response counts as correct.
const correctScoreThreshold = 50

// Request carries everything the grader needs about the incident and the
// user's response.
type Request struct {
	IncidentTitle       string
	IncidentDescription string
	IncidentSeverity    string
	AffectedServices    []string
	ErrorLogs           string
	CodebaseContext     string
	ResolutionApproach  string
	CodeChanges         string
	CommandsExecuted    []string
	SolutionType        string
	TimeSpentMinutes    int
	TimeLimitMinutes    int
}

// Result is a grading outcome. Score is always within [0,100].
type Result struct {
	Score     int
	Feedback  string
	IsCorrect bool
	Method    string
}

// Grader evaluates one incident response. Implementations must always
// return a usable result; grading failures degrade internally.
type Grader interface {
	Grade(ctx context.Context, req Request) Result
}

const systemPrompt = "You are an expert incident response instructor. " +
	"Rate the quality of the response out of 100 and provide concise, educational feedback " +
	"like you're teaching best practices for incident response. " +
	"First return the numerical score of the response as the first characters. " +
	"Then enter a line of 10 equals signs and leave your educational feedback below it."

// LLMGrader grades through an OpenAI chat completion, degrading to the
// deterministic fallback on any failure. A grader constructed without an
// API key is permanently in fallback mode.
type LLMGrader struct {
	client  *openai.Client
	model   string
	logger  *zap.Logger
	enabled bool
}

// NewLLMGrader builds a grader. An empty apiKey disables the model client
// entirely; the grader still works through the fallback path.
func NewLLMGrader(apiKey, model string, logger *zap.Logger) *LLMGrader {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("grader")

	if model == "" {
		model = openai.GPT4oMini
	}

	if apiKey == "" {
		logger.Warn("no grading API key configured, using fallback grading only")
		return &LLMGrader{model: model, logger: logger}
	}

	return &LLMGrader{
		client:  openai.NewClient(apiKey),
		model:   model,
		logger:  logger,
		enabled: true,
	}
}

// Grade evaluates one response. Model errors are logged and replaced by
// the deterministic fallback grade.
func (g *LLMGrader) Grade(ctx context.Context, req Request) Result {
	if !g.enabled {
		return FallbackGrade(req)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		g.logger.Warn("model grading failed, using fallback", zap.Error(err))
		return FallbackGrade(req)
	}
	if len(resp.Choices) == 0 {
		g.logger.Warn("model returned no choices, using fallback")
		return FallbackGrade(req)
	}

	result := parseGradeResponse(resp.Choices[0].Message.Content)
	g.logger.Debug("graded response",
		zap.Int("score", result.Score),
		zap.String("model", g.model))
	return result
}

func buildPrompt(req Request) string {
	commands := "None"
	if len(req.CommandsExecuted) > 0 {
		commands = strings.Join(req.CommandsExecuted, ", ")
	}

	return fmt.Sprintf(`INCIDENT DETAILS:
Title: %s
Description: %s
Severity: %s
Time Limit: %d minutes
Time Spent: %d minutes

INCIDENT CONTEXT:
Affected Services: %s
Error Logs: %s
Codebase Context: %s

USER'S RESPONSE:
Resolution Approach: %s
Code Changes: %s
Commands Executed: %s
Solution Type: %s

Please provide:
1. A score out of 100 (0-100)
2. A concise paragraph of feedback teaching best practices for incident response
`,
		req.IncidentTitle,
		req.IncidentDescription,
		req.IncidentSeverity,
		req.TimeLimitMinutes,
		req.TimeSpentMinutes,
		strings.Join(req.AffectedServices, ", "),
		req.ErrorLogs,
		req.CodebaseContext,
		req.ResolutionApproach,
		req.CodeChanges,
		commands,
		req.SolutionType,
	)
}

var scorePattern = regexp.MustCompile(`\b(\d{1,3})\b`)

// parseGradeResponse extracts the score from the first line and the
// feedback below the equals-sign separator. An unparseable response
// scores 50 with a generic message rather than failing.
func parseGradeResponse(text string) Result {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	score := 50
	if len(lines) > 0 {
		if m := scorePattern.FindString(lines[0]); m != "" {
			if parsed, err := strconv.Atoi(m); err == nil {
				score = clampScore(parsed)
			}
		}
	}

	feedback := "Unable to parse feedback from grader response."
	var feedbackLines []string
	foundSeparator := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && strings.Trim(trimmed, "=") == "" {
			foundSeparator = true
			continue
		}
		if foundSeparator && trimmed != "" {
			feedbackLines = append(feedbackLines, trimmed)
		}
	}
	if len(feedbackLines) > 0 {
		feedback = strings.Join(feedbackLines, " ")
	}

	return Result{
		Score:     score,
		Feedback:  feedback,
		IsCorrect: score >= correctScoreThreshold,
		Method:    MethodLLM,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// FallbackGrade produces a deterministic grade from the solution type and
// time efficiency alone. Used whenever model grading is unavailable.
func FallbackGrade(req Request) Result {
	var base int
	switch req.SolutionType {
	case "root_cause":
		base = 80
	case "workaround":
		base = 60
	case "escalation":
		base = 40
	default:
		base = 30
	}

	if req.TimeLimitMinutes > 0 {
		ratio := float64(req.TimeSpentMinutes) / float64(req.TimeLimitMinutes)
		switch {
		case ratio <= 0.5:
			base += 10
		case ratio <= 0.75:
			base += 5
		case ratio > 1.0:
			base -= 10
		}
	}

	score := clampScore(base)

	feedback := "Fallback grading applied due to grader unavailability. "
	switch req.SolutionType {
	case "root_cause":
		feedback += "Good job identifying the root cause! In real incidents, always verify your fix thoroughly and monitor the system afterward."
	case "workaround":
		feedback += "Workarounds are acceptable for immediate relief, but remember to follow up with a proper root cause fix to prevent recurrence."
	default:
		feedback += "Consider reviewing incident response best practices: assess impact, gather information, implement a fix, and verify resolution."
	}

	return Result{
		Score:     score,
		Feedback:  feedback,
		IsCorrect: score >= correctScoreThreshold,
		Method:    MethodFallback,
	}
}
