// Package suggest turns a context snapshot into a ranked, filtered list
// of actionable content suggestions.
package suggest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/scoring"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Thresholds for reactive candidates.
const (
	trendRelevanceThreshold = 70
	qtOpportunityThreshold  = 80
)

// Confidence baselines per trigger path, multiplied down when the
// backing context was degraded.
const (
	trendConfidence     = 0.85
	qtConfidence        = 0.80
	proactiveConfidence = 0.70
	degradedFactor      = 0.7
)

// ContextSource produces the snapshot a generation cycle runs against.
type ContextSource interface {
	Assemble(ctx context.Context) (*models.ContextBlock, error)
}

// Generator builds content suggestions from a context snapshot. The
// clock and the ID source are injectable so generation is deterministic
// under test.
type Generator struct {
	source ContextSource
	scorer *scoring.Scorer
	logger *logrus.Entry

	now   func() time.Time
	newID func() string
}

// NewGenerator creates a suggestion generator.
func NewGenerator(source ContextSource, scorer *scoring.Scorer, logger *logrus.Logger) *Generator {
	return &Generator{
		source: source,
		scorer: scorer,
		logger: logger.WithField("component", "suggest"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Generate produces at most limit suggestions, ordered by trigger
// class: trend-reactive, then QT-reactive, then proactive. Candidates
// grading D or F are discarded; low-quality output never reaches the
// list. The error is non-nil only when the context itself could not be
// assembled, which is distinct from "no good suggestions right now".
func (g *Generator) Generate(ctx context.Context, limit int) ([]models.ContentSuggestion, error) {
	block, err := g.source.Assemble(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble context: %w", err)
	}

	return g.GenerateFromBlock(block, limit), nil
}

// GenerateFromBlock runs one generation cycle against an already
// assembled snapshot.
func (g *Generator) GenerateFromBlock(block *models.ContextBlock, limit int) []models.ContentSuggestion {
	if limit <= 0 {
		return nil
	}

	now := g.now()

	var candidates []models.ContentSuggestion
	candidates = append(candidates, g.fromTrends(block, now)...)
	candidates = append(candidates, g.fromViralPosts(block, now)...)
	candidates = append(candidates, g.proactive(block, now))

	kept := make([]models.ContentSuggestion, 0, len(candidates))
	for _, candidate := range candidates {
		candidate.QualityScore = g.scorer.Score(candidate.Content, block, &block.Brand)
		if candidate.QualityScore.Grade == "D" || candidate.QualityScore.Grade == "F" {
			g.logger.WithFields(logrus.Fields{
				"type":  candidate.Type,
				"grade": candidate.QualityScore.Grade,
			}).Debug("Dropped low-quality candidate")
			continue
		}
		if candidate.Expired(now) {
			continue
		}
		kept = append(kept, candidate)
	}

	if len(kept) > limit {
		kept = kept[:limit]
	}

	return kept
}

// fromTrends builds one post candidate per sufficiently relevant trend.
func (g *Generator) fromTrends(block *models.ContextBlock, now time.Time) []models.ContentSuggestion {
	var out []models.ContentSuggestion

	for _, topic := range block.Twitter.TopTrends {
		if topic.RelevanceScore <= trendRelevanceThreshold {
			continue
		}

		priority := models.PriorityHigh
		window := "Next 2 hours"
		ttl := 120 * time.Minute
		if topic.Lifecycle == models.LifecycleBreaking {
			priority = models.PriorityUrgent
			window = "Next 30 mins"
			ttl = 60 * time.Minute
		}

		content, angle := trendContent(topic)
		expires := now.Add(ttl)

		out = append(out, models.ContentSuggestion{
			ID:           g.newID(),
			Type:         models.SuggestionPost,
			Trigger:      models.TriggerReactive,
			Priority:     priority,
			Content:      content,
			Hook:         content,
			Angle:        angle,
			Why:          fmt.Sprintf("%q is %s with relevance %d", topic.Name, topic.Lifecycle, topic.RelevanceScore),
			TimingWindow: window,
			PredictedPerformance: models.PredictedPerformance{
				EngagementScore: topic.RelevanceScore,
				ViralityChance:  topic.ViralityPotential,
				Confidence:      confidence(trendConfidence, block.Degraded),
			},
			ContextReferences: []string{
				"trend:" + topic.ID,
				"market:" + string(block.Market.Mood),
			},
			CreatedAt: now,
			ExpiresAt: &expires,
		})
	}

	return out
}

// fromViralPosts builds one QT candidate per high-opportunity viral
// post that has a suggested take.
func (g *Generator) fromViralPosts(block *models.ContextBlock, now time.Time) []models.ContentSuggestion {
	var out []models.ContentSuggestion

	for _, post := range block.Twitter.ViralPosts {
		if post.QTOpportunityScore <= qtOpportunityThreshold || len(post.SuggestedQTs) == 0 {
			continue
		}

		qt := post.SuggestedQTs[0]
		expires := now.Add(60 * time.Minute)

		out = append(out, models.ContentSuggestion{
			ID:           g.newID(),
			Type:         models.SuggestionQT,
			Trigger:      models.TriggerReactive,
			Priority:     models.PriorityHigh,
			Content:      qt.Draft,
			Hook:         qt.Draft,
			Angle:        qt.Angle,
			Why:          fmt.Sprintf("%s is at QT opportunity %d with %.0f engagements/hour", post.Author.Handle, post.QTOpportunityScore, post.EngagementVelocity),
			TimingWindow: "Next 1 hour",
			PredictedPerformance: models.PredictedPerformance{
				EngagementScore: post.QTOpportunityScore,
				ViralityChance:  post.QTOpportunityScore,
				Confidence:      confidence(qtConfidence, block.Degraded),
			},
			ContextReferences: []string{
				"viral:" + post.ID,
				"author:" + post.Author.Handle,
			},
			CreatedAt: now,
			ExpiresAt: &expires,
		})
	}

	return out
}

// proactive builds exactly one thread candidate from the dominant
// narrative. It never expires.
func (g *Generator) proactive(block *models.ContextBlock, now time.Time) models.ContentSuggestion {
	content, angle, refs := proactiveContent(block)

	return models.ContentSuggestion{
		ID:           g.newID(),
		Type:         models.SuggestionThread,
		Trigger:      models.TriggerProactive,
		Priority:     models.PriorityMedium,
		Content:      content,
		Hook:         content,
		Angle:        angle,
		Why:          "scheduled narrative coverage independent of breaking signals",
		TimingWindow: "Today",
		PredictedPerformance: models.PredictedPerformance{
			EngagementScore: 60,
			ViralityChance:  40,
			Confidence:      confidence(proactiveConfidence, block.Degraded),
		},
		ContextReferences: refs,
		CreatedAt:         now,
	}
}

// trendContent seeds candidate text from the topic's first suggested
// angle, falling back to a data-framed opener when the provider sent no
// angles.
func trendContent(topic models.TrendingTopic) (content, angle string) {
	if len(topic.SuggestedAngles) > 0 {
		first := topic.SuggestedAngles[0]
		return first.Hook, first.Angle
	}

	content = fmt.Sprintf(
		"%s is moving at %.0f tweets/hour and most takes are noise. The data worth watching: positioning, funding, and who is actually on the other side.",
		capitalize(topic.Name), topic.TweetVelocity,
	)
	return content, "contrarian data angle"
}

// proactiveContent picks the dominant narrative: an uncovered content
// gap when the competitor source found one, otherwise a market
// structure recap.
func proactiveContent(block *models.ContextBlock) (content, angle string, refs []string) {
	refs = []string{"market:" + string(block.Market.Mood)}

	if len(block.Competitor.ContentGaps) > 0 {
		gap := block.Competitor.ContentGaps[0]
		content = fmt.Sprintf(
			"Gap in the timeline: %s. A data thread on exactly that, against the current %s backdrop and what positioning says next.",
			gap, block.Market.Mood,
		)
		return content, "uncovered content gap", append(refs, "gap:"+gap)
	}

	if len(block.Twitter.TopTrends) > 0 {
		top := block.Twitter.TopTrends[0]
		content = fmt.Sprintf(
			"Past the noise on %s: what the data supports, what it does not, and the three numbers that decide which way this resolves.",
			top.Name,
		)
		return content, "dominant narrative analysis", append(refs, "trend:"+top.ID)
	}

	content = fmt.Sprintf(
		"Market structure check: BTC %+.1f%% on the day, fear/greed at %d. A thread on the data behind the move and what actually changed.",
		block.Market.BTCChange24h, block.Market.FearGreedIndex,
	)
	return content, "market structure recap", refs
}

func confidence(base float64, degraded bool) float64 {
	if degraded {
		return base * degradedFactor
	}
	return base
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
