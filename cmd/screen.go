package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hireflow/internal/ai"
	"hireflow/internal/ai/gemini"
	"hireflow/internal/logger"
	"hireflow/internal/recruit"
	"hireflow/internal/secrets"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen and rank candidates against a job",
}

var screenEligibilityCmd = &cobra.Command{
	Use:   "eligibility <job-id> <candidate-id>...",
	Short: "Check which candidates meet a job's requirements",
	Args:  cobra.MinimumNArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		log := newLogger()
		svc := newService(log)

		results, err := svc.FilterEligibility(args[0], args[1:])
		if err != nil {
			fail(log, "screening eligibility", err)
		}

		printJSON(results)
	},
}

var screenRankCmd = &cobra.Command{
	Use:   "rank <job-id> <candidate-id>...",
	Short: "Rank candidates by weighted suitability score",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		svc := newService(log)

		// Default weights apply unless the caller overrides at least one.
		var weights *recruit.RankWeights
		flags := cmd.Flags()
		if flags.Changed("skills-weight") || flags.Changed("experience-weight") || flags.Changed("education-weight") {
			w := recruit.DefaultRankWeights()
			if flags.Changed("skills-weight") {
				w.Skills, _ = flags.GetFloat64("skills-weight")
			}
			if flags.Changed("experience-weight") {
				w.Experience, _ = flags.GetFloat64("experience-weight")
			}
			if flags.Changed("education-weight") {
				w.Education, _ = flags.GetFloat64("education-weight")
			}
			weights = &w
		}

		results, err := svc.RankCandidates(args[0], args[1:], weights)
		if err != nil {
			fail(log, "ranking candidates", err)
		}

		printJSON(results)
	},
}

var screenReviewCmd = &cobra.Command{
	Use:   "review <job-id> <candidate-id>",
	Short: "Ask the configured AI provider for an advisory fit review",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		svc := newService(log)

		config, err := getConfig()
		if err != nil {
			log.Fatal("getting a config", zap.Error(err))
		}

		reviewer, model, err := newReviewer(cmd.Context(), config, log)
		if err != nil {
			log.Fatal("building ai reviewer", zap.Error(err))
		}

		job, err := svc.GetJob(args[0])
		if err != nil {
			fail(log, "resolving job", err)
		}
		candidate, err := svc.GetCandidate(args[1])
		if err != nil {
			fail(log, "resolving candidate", err)
		}

		reviewLog := logger.WithReviewFields(log, "gemini", model)
		reviewLog.Info("requesting fit review",
			zap.String("job_id", job.ID),
			zap.String("candidate_id", candidate.ID),
		)

		review, err := reviewer.Review(cmd.Context(), job, candidate)
		if err != nil {
			reviewLog.Fatal("fit review failed", zap.Error(err))
		}

		printJSON(review)
	},
}

// newReviewer builds the Gemini-backed reviewer from the config. The review
// command is the only consumer; the deterministic engines never touch it.
func newReviewer(ctx context.Context, config *Config, log *zap.Logger) (ai.Reviewer, string, error) {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil, "", fmt.Errorf("ai review is disabled; enable it under the ai section of the config file")
	}

	provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
	if provider != "" && provider != "gemini" {
		return nil, "", fmt.Errorf("unsupported ai provider: %s", config.AI.Provider)
	}
	if config.AI.Gemini == nil {
		return nil, "", fmt.Errorf("gemini configuration is required when ai review is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.AI.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithReviewFields(log, "gemini", config.AI.Gemini.Model)
	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model, config.AI.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, "", err
	}

	minScore := config.AI.MinimumFitScore
	if minScore < 0 {
		minScore = 0
	}

	reviewer := gemini.NewReviewer(generator, genLogger, minScore, config.AI.Gemini.MaxLogLength)
	return reviewer, generator.Model(), nil
}

func init() {
	screenRankCmd.Flags().Float64("skills-weight", 0.5, "weight of the skill overlap score")
	screenRankCmd.Flags().Float64("experience-weight", 0.3, "weight of the experience score")
	screenRankCmd.Flags().Float64("education-weight", 0.2, "weight of the education score")

	screenCmd.AddCommand(screenEligibilityCmd, screenRankCmd, screenReviewCmd)
	rootCmd.AddCommand(screenCmd)
}
