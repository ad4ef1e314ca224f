package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/scoring"
	"github.com/spf13/cobra"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score [text]",
	Short: "Score a draft post against the quality rules",
	Long: `Score a draft post against the anti-slop quality rules and print the
result as JSON. Reads the draft from the argument, or from stdin when
no argument is given.

Examples:
  growth-back score "BTC reclaimed 97k, up 4.2% on the day."
  echo "gm frens" | growth-back score`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	var content string
	if len(args) == 1 {
		content = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read draft from stdin: %w", err)
		}
		content = strings.TrimRight(string(data), "\n")
	}

	voice := scoring.DefaultBrandVoice()
	score := scoring.NewScorer().Score(content, nil, &voice)

	out, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
