package trends

import (
	"time"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Age bands for the attention curve. A topic older than the FADING band
// is DEAD.
const (
	breakingMaxAge = 1 * time.Hour
	hotMaxAge      = 4 * time.Hour
	risingMaxAge   = 12 * time.Hour
	fadingMaxAge   = 24 * time.Hour
)

// collapseFraction is the share of peak velocity below which a topic is
// considered to be losing steam and gets downgraded one stage early.
const collapseFraction = 0.5

// ClassifyLifecycle derives the lifecycle stage of a topic from its age
// and velocity trend. A topic whose current velocity has collapsed
// below half its peak is moved one stage forward ahead of schedule.
// Missing velocity data classifies as RISING, the most conservative
// stage, rather than guessing BREAKING.
func ClassifyLifecycle(startedAt time.Time, velocity, peakVelocity float64, now time.Time) models.Lifecycle {
	if velocity <= 0 && peakVelocity <= 0 {
		return models.LifecycleRising
	}

	age := now.Sub(startedAt)
	stage := stageForAge(age)

	if peakVelocity > 0 && velocity < peakVelocity*collapseFraction {
		stage = nextStage(stage)
	}

	return stage
}

// Reclassify recomputes a topic's lifecycle, never moving it backwards.
// A topic that should go from FADING back to BREAKING must be treated
// as a new topic instead.
func Reclassify(topic models.TrendingTopic, now time.Time) models.Lifecycle {
	stage := ClassifyLifecycle(topic.StartedAt, topic.TweetVelocity, topic.PeakVelocity, now)
	if stage.Rank() < topic.Lifecycle.Rank() && topic.Lifecycle != "" {
		return topic.Lifecycle
	}
	return stage
}

func stageForAge(age time.Duration) models.Lifecycle {
	switch {
	case age < breakingMaxAge:
		return models.LifecycleBreaking
	case age < hotMaxAge:
		return models.LifecycleHot
	case age < risingMaxAge:
		return models.LifecycleRising
	case age < fadingMaxAge:
		return models.LifecycleFading
	default:
		return models.LifecycleDead
	}
}

func nextStage(stage models.Lifecycle) models.Lifecycle {
	switch stage {
	case models.LifecycleBreaking:
		return models.LifecycleHot
	case models.LifecycleHot:
		return models.LifecycleRising
	case models.LifecycleRising:
		return models.LifecycleFading
	default:
		return models.LifecycleDead
	}
}
