package grading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseGradeResponse(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		result := parseGradeResponse(`85
==========
Strong diagnosis. Next time capture a heap dump before restarting so the
root cause can be confirmed offline.`)

		assert.Equal(t, 85, result.Score)
		assert.True(t, result.IsCorrect)
		assert.Equal(t, MethodLLM, result.Method)
		assert.Contains(t, result.Feedback, "Strong diagnosis.")
		assert.Contains(t, result.Feedback, "confirmed offline.")
	})

	t.Run("score embedded in text", func(t *testing.T) {
		result := parseGradeResponse("Score: 72/100\n==========\nDecent work.")

		assert.Equal(t, 72, result.Score)
		assert.Equal(t, "Decent work.", result.Feedback)
	})

	t.Run("score above 100 is clamped", func(t *testing.T) {
		result := parseGradeResponse("150\n==========\nToo generous.")

		assert.Equal(t, 100, result.Score)
	})

	t.Run("missing score defaults to 50", func(t *testing.T) {
		result := parseGradeResponse("no numbers here\n==========\nfeedback")

		assert.Equal(t, 50, result.Score)
		assert.True(t, result.IsCorrect)
	})

	t.Run("missing separator keeps default feedback", func(t *testing.T) {
		result := parseGradeResponse("90\ngreat work but no separator")

		assert.Equal(t, 90, result.Score)
		assert.Contains(t, result.Feedback, "Unable to parse feedback")
	})

	t.Run("below threshold is incorrect", func(t *testing.T) {
		result := parseGradeResponse("35\n==========\nNeeds work.")

		assert.False(t, result.IsCorrect)
	})
}

func TestFallbackGrade(t *testing.T) {
	base := Request{TimeLimitMinutes: 30, TimeSpentMinutes: 20}

	t.Run("solution type bases", func(t *testing.T) {
		cases := []struct {
			solutionType string
			wantScore    int
		}{
			{"root_cause", 85},
			{"workaround", 65},
			{"escalation", 45},
			{"abandonment", 35},
			{"", 35},
		}
		for _, tc := range cases {
			req := base
			req.SolutionType = tc.solutionType
			result := FallbackGrade(req)
			// 20/30 ratio lands in the +5 band for every case.
			assert.Equal(t, tc.wantScore, result.Score, "solution=%q", tc.solutionType)
			assert.Equal(t, MethodFallback, result.Method)
		}
	})

	t.Run("fast resolution bonus", func(t *testing.T) {
		result := FallbackGrade(Request{
			SolutionType:     "root_cause",
			TimeLimitMinutes: 30,
			TimeSpentMinutes: 10,
		})

		assert.Equal(t, 90, result.Score)
	})

	t.Run("overtime penalty", func(t *testing.T) {
		result := FallbackGrade(Request{
			SolutionType:     "workaround",
			TimeLimitMinutes: 30,
			TimeSpentMinutes: 40,
		})

		assert.Equal(t, 50, result.Score)
		assert.True(t, result.IsCorrect)
	})

	t.Run("zero time limit applies no adjustment", func(t *testing.T) {
		result := FallbackGrade(Request{SolutionType: "root_cause"})

		assert.Equal(t, 80, result.Score)
	})

	t.Run("deterministic", func(t *testing.T) {
		req := Request{SolutionType: "workaround", TimeLimitMinutes: 30, TimeSpentMinutes: 12}
		assert.Equal(t, FallbackGrade(req), FallbackGrade(req))
	})
}

func TestLLMGraderDisabled(t *testing.T) {
	grader := NewLLMGrader("", "", zap.NewNop())

	result := grader.Grade(context.Background(), Request{
		SolutionType:     "root_cause",
		TimeLimitMinutes: 30,
		TimeSpentMinutes: 10,
	})

	assert.Equal(t, MethodFallback, result.Method)
	assert.Equal(t, 90, result.Score)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(Request{
		IncidentTitle:      "Checkout Service 500 Errors",
		IncidentSeverity:   "P0",
		AffectedServices:   []string{"checkout-service", "payment-gateway"},
		ResolutionApproach: "Rolled back the bad deploy",
		CommandsExecuted:   []string{"kubectl rollout undo deploy/checkout"},
		SolutionType:       "root_cause",
		TimeLimitMinutes:   30,
		TimeSpentMinutes:   12,
	})

	assert.Contains(t, prompt, "Checkout Service 500 Errors")
	assert.Contains(t, prompt, "Severity: P0")
	assert.Contains(t, prompt, "checkout-service, payment-gateway")
	assert.Contains(t, prompt, "kubectl rollout undo deploy/checkout")
	assert.Contains(t, prompt, "Time Limit: 30 minutes")
}

func TestBuildPromptNoCommands(t *testing.T) {
	prompt := buildPrompt(Request{IncidentTitle: "x"})

	assert.Contains(t, prompt, "Commands Executed: None")
}
