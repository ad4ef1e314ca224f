package trends

import (
	"math"
	"time"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// velocityWeightCutoff is the post age at which scoring stops favoring
// engagement velocity and starts favoring absolute engagement.
const velocityWeightCutoff = 6.0 // hours

// ViralScore blends engagement velocity and follower-normalized
// engagement rate into a 0-100 score. Posts younger than six hours are
// weighted 60/40 toward velocity, older posts 30/70 toward absolute
// engagement. The 0.5h age floor keeps very fresh posts from dividing
// their velocity toward infinity; the 1000-follower floor does the same
// for tiny accounts.
func ViralScore(metrics models.PostMetrics, hoursOld float64, followerCount int) int {
	totalEngagement := float64(metrics.Likes) +
		float64(metrics.Retweets)*2 +
		float64(metrics.Replies) +
		float64(metrics.Quotes)*1.5

	velocity := totalEngagement / math.Max(hoursOld, 0.5)
	engagementRate := (totalEngagement / math.Max(float64(followerCount), 1000)) * 100

	velocityWeight := 0.3
	if hoursOld < velocityWeightCutoff {
		velocityWeight = 0.6
	}

	normalizedVelocity := math.Min(velocity/100, 100)
	normalizedEngagement := math.Min(engagementRate*10, 100)

	return int(math.Round(normalizedVelocity*velocityWeight + normalizedEngagement*(1-velocityWeight)))
}

// EngagementVelocity returns total weighted engagement per hour for a
// post, using the same weights and age floor as ViralScore.
func EngagementVelocity(metrics models.PostMetrics, postedAt, now time.Time) float64 {
	totalEngagement := float64(metrics.Likes) +
		float64(metrics.Retweets)*2 +
		float64(metrics.Replies) +
		float64(metrics.Quotes)*1.5

	hoursOld := now.Sub(postedAt).Hours()
	return totalEngagement / math.Max(hoursOld, 0.5)
}

// QTOpportunity scores how worthwhile it is to quote-tweet a post right
// now. Derived at read time; never cached past the context window.
func QTOpportunity(post models.ViralPost, now time.Time) int {
	hoursOld := now.Sub(post.PostedAt).Hours()
	return ViralScore(post.Metrics, hoursOld, post.Author.Followers)
}
