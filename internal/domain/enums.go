package domain

// BehaviorLayer is the stored classification axis of a signal.
type BehaviorLayer string

const (
	BehaviorPositive BehaviorLayer = "positive"
	BehaviorNegative BehaviorLayer = "negative"
	BehaviorNeutral  BehaviorLayer = "neutral"
)

func (b BehaviorLayer) String() string { return string(b) }

func (b BehaviorLayer) IsValid() bool {
	switch b {
	case BehaviorPositive, BehaviorNegative, BehaviorNeutral:
		return true
	}
	return false
}

// Lifecycle is the presentation-facing maturity stage of a signal.
type Lifecycle string

const (
	LifecycleWeak       Lifecycle = "weak"
	LifecycleEmerging   Lifecycle = "emerging"
	LifecycleGrowing    Lifecycle = "growing"
	LifecycleMainstream Lifecycle = "mainstream"
	LifecycleDeclining  Lifecycle = "declining"
)

func (l Lifecycle) String() string { return string(l) }

func (l Lifecycle) IsValid() bool {
	switch l {
	case LifecycleWeak, LifecycleEmerging, LifecycleGrowing, LifecycleMainstream, LifecycleDeclining:
		return true
	}
	return false
}

// LifecycleToBehavior maps a lifecycle stage to the stored behavior layer.
// The mapping is lossy: emerging and growing share positive, weak and
// mainstream share neutral.
func LifecycleToBehavior(l Lifecycle) BehaviorLayer {
	switch l {
	case LifecycleEmerging, LifecycleGrowing:
		return BehaviorPositive
	case LifecycleDeclining:
		return BehaviorNegative
	default:
		return BehaviorNeutral
	}
}

// BehaviorToLifecycle maps a stored behavior layer to its display lifecycle.
// It is not the inverse of LifecycleToBehavior for growing and mainstream.
func BehaviorToLifecycle(b BehaviorLayer) Lifecycle {
	switch b {
	case BehaviorPositive:
		return LifecycleEmerging
	case BehaviorNegative:
		return LifecycleDeclining
	default:
		return LifecycleWeak
	}
}

// SteepCategory is the Social/Technological/Economic/Environmental/Political
// taxonomy applied to signals.
type SteepCategory string

const (
	SteepSocial        SteepCategory = "social"
	SteepTechnological SteepCategory = "technological"
	SteepEconomic      SteepCategory = "economic"
	SteepEnvironmental SteepCategory = "environmental"
	SteepPolitical     SteepCategory = "political"
)

func (c SteepCategory) String() string { return string(c) }

func (c SteepCategory) IsValid() bool {
	switch c {
	case SteepSocial, SteepTechnological, SteepEconomic, SteepEnvironmental, SteepPolitical:
		return true
	}
	return false
}

// SignalStatus is the record state of a signal. Archived and merged signals
// are retained, never physically removed by those transitions.
type SignalStatus string

const (
	SignalStatusActive   SignalStatus = "active"
	SignalStatusArchived SignalStatus = "archived"
	SignalStatusMerged   SignalStatus = "merged"
)

func (s SignalStatus) String() string { return string(s) }

func (s SignalStatus) IsValid() bool {
	switch s {
	case SignalStatusActive, SignalStatusArchived, SignalStatusMerged:
		return true
	}
	return false
}

// SourceType identifies the kind of ingestion origin.
type SourceType string

const (
	SourceTypeRSS        SourceType = "rss"
	SourceTypeWeb        SourceType = "web"
	SourceTypeSocial     SourceType = "social"
	SourceTypeAPI        SourceType = "api"
	SourceTypeNewsletter SourceType = "newsletter"
)

func (t SourceType) String() string { return string(t) }

func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeRSS, SourceTypeWeb, SourceTypeSocial, SourceTypeAPI, SourceTypeNewsletter:
		return true
	}
	return false
}

// SourceStatus is the collection state of a source. It is independent of
// Source.IsActive.
type SourceStatus string

const (
	SourceStatusActive   SourceStatus = "active"
	SourceStatusInactive SourceStatus = "inactive"
	SourceStatusError    SourceStatus = "error"
	SourceStatusPending  SourceStatus = "pending"
)

func (s SourceStatus) String() string { return string(s) }

func (s SourceStatus) IsValid() bool {
	switch s {
	case SourceStatusActive, SourceStatusInactive, SourceStatusError, SourceStatusPending:
		return true
	}
	return false
}

// SubscriberStatus is the delivery state of a newsletter subscriber.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberBounced      SubscriberStatus = "bounced"
)

func (s SubscriberStatus) String() string { return string(s) }

func (s SubscriberStatus) IsValid() bool {
	switch s {
	case SubscriberActive, SubscriberUnsubscribed, SubscriberBounced:
		return true
	}
	return false
}

// Sentiment is the polarity assigned to a mention.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) String() string { return string(s) }

// Granularity is the requested bucket width of a velocity trend.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func (g Granularity) String() string { return string(g) }

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// Timeframe is a lookback window used by source health reporting.
type Timeframe string

const (
	Timeframe24h Timeframe = "24h"
	Timeframe7d  Timeframe = "7d"
	Timeframe30d Timeframe = "30d"
)

func (t Timeframe) String() string { return string(t) }

func (t Timeframe) IsValid() bool {
	switch t {
	case Timeframe24h, Timeframe7d, Timeframe30d:
		return true
	}
	return false
}
