package models

import (
	"time"
)

// Lifecycle is the discrete stage of a trending topic's attention curve.
// Transitions are forward only: BREAKING -> HOT -> RISING -> FADING -> DEAD.
type Lifecycle string

const (
	LifecycleBreaking Lifecycle = "breaking"
	LifecycleHot      Lifecycle = "hot"
	LifecycleRising   Lifecycle = "rising"
	LifecycleFading   Lifecycle = "fading"
	LifecycleDead     Lifecycle = "dead"
)

// Rank returns the position of a lifecycle stage on the forward axis.
// Lower is younger.
func (l Lifecycle) Rank() int {
	switch l {
	case LifecycleBreaking:
		return 0
	case LifecycleHot:
		return 1
	case LifecycleRising:
		return 2
	case LifecycleFading:
		return 3
	case LifecycleDead:
		return 4
	default:
		return 4
	}
}

// ContentAngle is one suggested way to cover a topic.
type ContentAngle struct {
	Hook   string `json:"hook"`
	Angle  string `json:"angle"`
	Format string `json:"format,omitempty"` // post, thread, qt
}

// TrendingTopic is a topic currently gaining attention. Lifecycle is
// recomputed whenever the topic is read after time has passed.
type TrendingTopic struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	TweetVelocity     float64        `json:"tweet_velocity"` // tweets/hour
	PeakVelocity      float64        `json:"peak_velocity"`  // highest observed tweets/hour
	Lifecycle         Lifecycle      `json:"lifecycle"`
	RelevanceScore    int            `json:"relevance_score"`    // 0-100
	ViralityPotential int            `json:"virality_potential"` // 0-100
	StartedAt         time.Time      `json:"started_at"`
	Category          string         `json:"category"`
	SuggestedAngles   []ContentAngle `json:"suggested_angles"`
}

// PostAuthor identifies the author of a viral post.
type PostAuthor struct {
	Handle    string `json:"handle"`
	Followers int    `json:"followers"`
	Verified  bool   `json:"verified"`
}

// PostMetrics holds raw engagement counts for a post.
type PostMetrics struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
	Quotes   int `json:"quotes"`
	Views    int `json:"views,omitempty"`
}

// SuggestedQT is a candidate quote-tweet take on a viral post.
type SuggestedQT struct {
	Angle string `json:"angle"`
	Draft string `json:"draft"`
}

// ViralPost is a post judged worth reacting to. EngagementVelocity and
// QTOpportunityScore are derived at read time from metrics and elapsed
// time; they are never cached past the context validity window.
type ViralPost struct {
	ID                 string        `json:"id"`
	Author             PostAuthor    `json:"author"`
	Content            string        `json:"content"`
	Metrics            PostMetrics   `json:"metrics"`
	PostedAt           time.Time     `json:"posted_at"`
	EngagementVelocity float64       `json:"engagement_velocity"` // engagement/hour
	QTOpportunityScore int           `json:"qt_opportunity_score"` // 0-100
	SuggestedQTs       []SuggestedQT `json:"suggested_qts"`
}

// SocialSignals is the raw provider payload for the social source.
type SocialSignals struct {
	TrendingTopics []TrendingTopic `json:"trending_topics"`
	ViralPosts     []ViralPost     `json:"viral_posts"`
	FetchedAt      time.Time       `json:"fetched_at"`
}

// TwitterContext is the normalized social slice of a ContextBlock.
type TwitterContext struct {
	TopTrends  []TrendingTopic `json:"top_trends"`
	ViralPosts []ViralPost     `json:"viral_posts"`
}

// CompetitorPost is one recent piece of competitor activity.
type CompetitorPost struct {
	Handle     string    `json:"handle"`
	Content    string    `json:"content"`
	Engagement int       `json:"engagement"`
	PostedAt   time.Time `json:"posted_at"`
	Topic      string    `json:"topic,omitempty"`
}

// CompetitorSignals is the raw provider payload for the competitor source.
type CompetitorSignals struct {
	RecentActivity []CompetitorPost `json:"recent_activity"`
	ContentGaps    []string         `json:"content_gaps"`
	FetchedAt      time.Time        `json:"fetched_at"`
}

// CompetitorContext is the normalized competitor slice of a ContextBlock.
type CompetitorContext struct {
	RecentActivity []CompetitorPost `json:"recent_activity"`
	ContentGaps    []string         `json:"content_gaps"`
}
