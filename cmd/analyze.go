package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skill-gap/internal/analysis"
	"github.com/spigell/skill-gap/internal/coach"
	"github.com/spigell/skill-gap/internal/logger"
	"github.com/spigell/skill-gap/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the skill gap between a resume and a job description",
	Long: `Analyze the skill gap between a resume and a job description.

Inputs can be "-" for standard input, a local file (.txt, .pdf, .docx, .html),
an s3://bucket/key object or an hh.ru vacancy (hh:<id> or a vacancy URL).
Missing inputs are asked for interactively.`,
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "resume reference")
	analyzeCmd.Flags().StringP("job", "J", "", "job description reference")
	analyzeCmd.Flags().StringP("format", "f", "", "report format: text or json")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to this file")
	analyzeCmd.Flags().Bool("plan", false, "request an AI learning plan (needs a Gemini API key)")
	analyzeCmd.Flags().String("tokenizer", "", "tokenizer: segment or naive")
	analyzeCmd.Flags().String("method", "", "similarity method: tfidf or overlap")

	viper.BindPFlag("report.format", analyzeCmd.Flags().Lookup("format"))
	viper.BindPFlag("tokenizer", analyzeCmd.Flags().Lookup("tokenizer"))
	viper.BindPFlag("similarity.method", analyzeCmd.Flags().Lookup("method"))
	viper.BindPFlag("ai.enabled", analyzeCmd.Flags().Lookup("plan"))
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	base, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	runID := uuid.NewString()
	runLog := logger.WithRun(base, runID)

	config, err := getConfig()
	if err != nil {
		runLog.Fatal("getting a config", zap.Error(err))
	}

	runLog.Debug("starting the skill-gap analysis", zap.String("version", version), zap.Any("config", redacted(config)))

	analyzer, err := newAnalyzer(config, runLog)
	if err != nil {
		runLog.Fatal("preparing the analyzer", zap.Error(err))
	}

	loader, err := newLoader(ctx, config, runLog)
	if err != nil {
		runLog.Fatal("preparing input sources", zap.Error(err))
	}

	resumeRef, _ := cmd.Flags().GetString("resume")
	jobRef, _ := cmd.Flags().GetString("job")
	interactive := resumeRef == "" || jobRef == ""

	resume, err := loadInput(ctx, loader, resumeRef, "RESUME INPUT")
	if err != nil {
		runLog.Fatal("loading the resume", zap.Error(err))
	}
	runLog.Info("resume loaded", zap.Int("length", len(resume)))

	job, err := loadInput(ctx, loader, jobRef, "JOB DESCRIPTION INPUT")
	if err != nil {
		runLog.Fatal("loading the job description", zap.Error(err))
	}
	runLog.Info("job description loaded", zap.Int("length", len(job)))

	result, err := analyzer.Analyze(resume, job)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidInput) {
			runLog.Fatal("input error", zap.Error(err), zap.String("hint", "both the resume and the job description must contain text"))
		}
		runLog.Fatal("analysis failed", zap.Error(err))
	}

	runLog.Info("analysis complete", logger.AnalysisFields(result)...)

	var plan *coach.LearningPlan
	if config.AI != nil && config.AI.Enabled {
		plan = learningPlan(ctx, config.AI, runLog, resume, job, result)
	}

	env := report.NewEnvelope(result, plan)
	env.ID = runID

	out, err := report.Render(config.Report.Format, env)
	if err != nil {
		runLog.Fatal("rendering the report", zap.Error(err))
	}

	fmt.Println(out)

	if err := saveReport(cmd, interactive, config, out, env, runLog); err != nil {
		runLog.Fatal("saving the report", zap.Error(err))
	}
}
