package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/assembly"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/scoring"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/signals"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/suggest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var suggestLimit int

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Run one suggestion cycle against the demo fixtures",
	Long: `Assemble a context block from the built-in demo providers, run one
generation cycle and print the ranked suggestions as JSON. Useful for
inspecting pipeline output without Redis, NATS or live sources.

Examples:
  growth-back suggest
  growth-back suggest --limit 5`,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 10, "Maximum number of suggestions")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	market := signals.NewMarketSource(signals.DemoMarketProvider{}, nil, log)
	social := signals.NewSocialSource(signals.DemoSocialProvider{}, nil, log)
	competitor := signals.NewCompetitorSource(signals.DemoCompetitorProvider{}, nil, nil, log)

	assembler := assembly.NewAssembler(market, social, competitor,
		scoring.DefaultBrandVoice(), 500*time.Millisecond, log)
	generator := suggest.NewGenerator(assembler, scoring.NewScorer(), log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	suggestions, err := generator.Generate(ctx, suggestLimit)
	if err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}

	out, err := json.MarshalIndent(suggestions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode suggestions: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
