package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/skill-gap/internal/analysis"
	"github.com/spigell/skill-gap/internal/report"
	"github.com/spigell/skill-gap/internal/similarity"
	"github.com/spigell/skill-gap/internal/source"
	"github.com/spigell/skill-gap/internal/textnorm"
)

const (
	app       = "skill-gap"
	envPrefix = "SKILL_GAP"
)

type Config struct {
	Tokenizer  string           `mapstructure:"tokenizer"`
	Similarity SimilarityConfig `mapstructure:"similarity"`
	Analysis   AnalysisConfig   `mapstructure:"analysis"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Report     ReportConfig     `mapstructure:"report"`
	HeadHunter HeadHunterConfig `mapstructure:"headhunter"`
	S3         source.S3Config  `mapstructure:"s3"`
	AI         *AIConfig        `mapstructure:"ai"`
}

type SimilarityConfig struct {
	Method      string `mapstructure:"method"`
	MaxFeatures int    `mapstructure:"max-features"`
}

type AnalysisConfig struct {
	TopSkills          int `mapstructure:"top-skills"`
	MaxRecommendations int `mapstructure:"max-recommendations"`
}

type VocabularyConfig struct {
	File  string   `mapstructure:"file"`
	Extra []string `mapstructure:"extra"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type HeadHunterConfig struct {
	TokenFile string `mapstructure:"token-file"`
	UserAgent string `mapstructure:"user-agent"`
	APIURL    string `mapstructure:"api-url"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skill-gap compares a resume with a job description and reports the missing skills",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skill-gap.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tokenizer", textnorm.TokenizerSegment)
	v.SetDefault("similarity.method", similarity.MethodTFIDF)
	v.SetDefault("similarity.max-features", similarity.DefaultMaxFeatures)
	v.SetDefault("analysis.top-skills", analysis.DefaultTopSkills)
	v.SetDefault("analysis.max-recommendations", analysis.DefaultMaxRecommendations)
	v.SetDefault("vocabulary.file", "")
	v.SetDefault("vocabulary.extra", []string{})
	v.SetDefault("report.format", report.FormatText)
	v.SetDefault("report.file", report.DefaultFile)
	v.SetDefault("headhunter.token-file", "")
	v.SetDefault("headhunter.user-agent", "")
	v.SetDefault("headhunter.api-url", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access-key", "")
	v.SetDefault("s3.secret-key", "")
	v.SetDefault("s3.use-path-style", false)
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "")
	v.SetDefault("ai.gemini.max-retries", 3)
	v.SetDefault("ai.gemini.max-log-length", 200)
}

func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Defaults are enough unless a config file was requested explicitly.
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return config, nil
}
