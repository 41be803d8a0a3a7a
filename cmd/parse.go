package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/alexandarmartin-KC/cvside/internal/ai"
	"github.com/alexandarmartin-KC/cvside/internal/ai/gemini"
	"github.com/alexandarmartin-KC/cvside/internal/cv"
	"github.com/alexandarmartin-KC/cvside/internal/logger"
	"github.com/alexandarmartin-KC/cvside/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowProfile = "Show profile"
	PromptDumpProfile = "Dump profile to file"
	PromptExit        = "Exit"

	geminiAPIKeyEnv = "GEMINI_API_KEY"
)

var errExit = errors.New("exit requested")

var profilePrompt = promptui.Select{
	Label: "Profile extracted. What now?",
	Items: []string{PromptShowProfile, PromptDumpProfile, PromptExit},
}

var parseCmd = &cobra.Command{
	Use:   "parse <cv.txt>",
	Short: "Extract a structured profile from plaintext CV content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("ai", false, "enable the AI fallback for experience extraction")
	parseCmd.Flags().BoolP("auto-approve", "y", false, "print the profile without the interactive menu")
}

func parse(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	vocab, err := cv.VocabularyFromMap(config.Vocabulary)
	if err != nil {
		logger.Fatal("loading vocabulary overrides", zap.Error(err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading cv file", zap.String("path", path), zap.Error(err))
	}

	fallback, err := buildFallback(ctx, cmd, config, logger)
	if err != nil {
		logger.Fatal("configuring ai fallback", zap.Error(err))
	}

	parser := cv.NewParser(vocab, logger, fallback)
	profile := parser.Parse(ctx, string(data))

	if cmd.Flag("auto-approve").Value.String() == "true" {
		printProfile(profile)
		return
	}

	for {
		_, action, err := profilePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleProfileAction(action, profile, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleProfileAction(action string, profile *cv.Profile, logger *zap.Logger) error {
	switch action {
	case PromptShowProfile:
		printProfile(profile)
		return nil
	case PromptDumpProfile:
		filename, err := dumpProfile(profile)
		if err != nil {
			return fmt.Errorf("dump profile to file: %w", err)
		}
		logger.Info("profile dumped", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// buildFallback wires the Gemini extractor when the flag or config enables
// it. With the AI tier off it returns nil and the parser stays fully
// deterministic.
func buildFallback(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger) (ai.Extractor, error) {
	enabled := cmd.Flag("ai").Value.String() == "true"
	if config.AI != nil && config.AI.Enabled {
		enabled = true
	}
	if !enabled {
		return nil, nil
	}

	gcfg := &GeminiConfig{}
	if config.AI != nil && config.AI.Gemini != nil {
		gcfg = config.AI.Gemini
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gcfg.APIKey,
		Env:   geminiAPIKeyEnv,
		File:  gcfg.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model)
	if err != nil {
		return nil, err
	}

	logger.Info("ai fallback enabled", zap.String("model", generator.Model()))

	return gemini.NewExtractor(generator, logger, gcfg.MaxRetries, gcfg.MaxLogLength), nil
}

func printProfile(profile *cv.Profile) {
	pretty, _ := json.MarshalIndent(profile, "", "  ")
	fmt.Println(string(pretty))
}

func dumpProfile(profile *cv.Profile) (string, error) {
	file, err := os.CreateTemp("", "profile_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		return "", err
	}
	return file.Name(), nil
}
