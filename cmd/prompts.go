package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skill-gap/internal/report"
	"github.com/spigell/skill-gap/internal/source"
)

const (
	PromptPaste      = "Paste text"
	PromptFile       = "Read from file"
	PromptYes        = "Yes"
	PromptNo         = "No"
	PromptDumpToFile = "Dump JSON report to a temporary file"
)

var savePrompt = promptui.Select{
	Label: "Save report to file?",
	Items: []string{PromptYes, PromptNo, PromptDumpToFile},
}

// askInput asks how to provide a text and returns a reference for the loader.
func askInput(title string) (string, error) {
	fmt.Fprintln(os.Stderr, title)
	fmt.Fprintln(os.Stderr, strings.Repeat("-", len(title)))

	methodPrompt := promptui.Select{
		Label: "Choose input method",
		Items: []string{PromptPaste, PromptFile},
	}

	_, method, err := methodPrompt.Run()
	if err != nil {
		return "", err
	}

	switch method {
	case PromptPaste:
		fmt.Fprintln(os.Stderr, "Paste the text, then press Ctrl+D on an empty line:")
		return source.StdinRef, nil
	case PromptFile:
		pathPrompt := promptui.Prompt{
			Label:    "File path, s3:// object or hh.ru vacancy",
			Validate: validateRef,
		}
		return pathPrompt.Run()
	default:
		return "", fmt.Errorf("invalid input method: %s", method)
	}
}

func validateRef(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errors.New("reference must not be empty")
	}
	if strings.HasPrefix(ref, "s3://") || strings.HasPrefix(ref, "hh:") || strings.HasPrefix(ref, "http") {
		return nil
	}
	if _, err := os.Stat(ref); err != nil {
		return fmt.Errorf("file not found: %s", ref)
	}
	return nil
}

// saveReport writes the report when --output is set, or asks in interactive runs.
func saveReport(cmd *cobra.Command, interactive bool, config *Config, out string, env *report.Envelope, logger *zap.Logger) error {
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := report.Save(output, out); err != nil {
			return err
		}
		logger.Info("report saved", zap.String("filename", output))
		return nil
	}

	if !interactive {
		return nil
	}

	_, action, err := savePrompt.Run()
	if err != nil {
		return err
	}

	switch action {
	case PromptYes:
		if err := report.Save(config.Report.File, out); err != nil {
			return err
		}
		logger.Info("report saved", zap.String("filename", config.Report.File))
	case PromptDumpToFile:
		filename, err := report.DumpToTmpFile(env)
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
	case PromptNo:
	default:
		return fmt.Errorf("invalid action: %s", action)
	}

	return nil
}

// loadInput asks for a reference when ref is empty and loads it.
func loadInput(ctx context.Context, loader *source.Loader, ref, title string) (string, error) {
	if ref == "" {
		var err error
		if ref, err = askInput(title); err != nil {
			return "", err
		}
	}

	return loader.Load(ctx, ref)
}
