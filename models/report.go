package models

import "time"

// VolumeStats are the headline counters for one projection of the corpus.
type VolumeStats struct {
	TotalMessages int `json:"total_messages"`
	TotalWords    int `json:"total_words"`
	MediaCount    int `json:"media_count"`
	LinkCount     int `json:"link_count"`
}

// UserActivity is one row of the active-users table. Share is the
// percentage of non-system messages, rounded half-up to one decimal;
// the SystemSender row always reports zero.
type UserActivity struct {
	User     string  `json:"user"`
	Messages int     `json:"messages"`
	Share    float64 `json:"share"`
}

// LabelCount is a generic (label, count) pair used by every frequency
// and timeline table.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Heatmap is the hour-of-day by day-of-week activity matrix. Counts is
// indexed [day][period] with the week starting on Monday; missing
// combinations are zero, never omitted.
type Heatmap struct {
	Days    []string `json:"days"`
	Periods []string `json:"periods"`
	Counts  [][]int  `json:"counts"`
}

// SentimentSummary counts messages per polarity class.
type SentimentSummary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// FlaggedMessage is one message that contained a flagged word.
type FlaggedMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
}

// OffensiveReport lists flagged-word counts and the messages that
// triggered them.
type OffensiveReport struct {
	Words    []LabelCount     `json:"words"`
	Messages []FlaggedMessage `json:"messages"`
}

// Report bundles every metric for one analysis request. ActiveUsers and
// ConversationStarters are whole-corpus tables and are only populated
// for the unfiltered report.
type Report struct {
	User                 string           `json:"user"`
	Volume               VolumeStats      `json:"volume"`
	ActiveUsers          []UserActivity   `json:"active_users,omitempty"`
	WordFrequency        []LabelCount     `json:"word_frequency"`
	EmojiFrequency       []LabelCount     `json:"emoji_frequency"`
	MonthlyTimeline      []LabelCount     `json:"monthly_timeline"`
	DailyTimeline        []LabelCount     `json:"daily_timeline"`
	WeekdayActivity      []LabelCount     `json:"weekday_activity"`
	MonthActivity        []LabelCount     `json:"month_activity"`
	Heatmap              Heatmap          `json:"heatmap"`
	Sentiment            SentimentSummary `json:"sentiment"`
	Offensive            OffensiveReport  `json:"offensive"`
	ConversationStarters []LabelCount     `json:"conversation_starters,omitempty"`
	LongestMessage       string           `json:"longest_message"`
	FirstMessageAt       *time.Time       `json:"first_message_at,omitempty"`
	LastMessageAt        *time.Time       `json:"last_message_at,omitempty"`
}
