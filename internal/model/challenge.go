package model

import "time"

// ChallengeType selects the progress formula for a savings challenge.
type ChallengeType string

const (
	ChallengeNoSpend        ChallengeType = "no_spend"
	ChallengeReduceCategory ChallengeType = "reduce_category"
	ChallengeSaveAmount     ChallengeType = "save_amount"
	ChallengeStreak         ChallengeType = "streak"
)

// ChallengeStatus is the lifecycle state of a challenge. Transitions only
// move forward: not_started -> active -> {completed, failed}. The terminal
// states are absorbing.
type ChallengeStatus string

const (
	StatusNotStarted ChallengeStatus = "not_started"
	StatusActive     ChallengeStatus = "active"
	StatusCompleted  ChallengeStatus = "completed"
	StatusFailed     ChallengeStatus = "failed"
)

// Terminal reports whether s is completed or failed.
func (s ChallengeStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// SavingsChallenge is a time-boxed, gamified commitment evaluated against
// the transaction ledger. CurrentProgress and Status are derived values
// persisted back by the caller after each evaluation pass.
type SavingsChallenge struct {
	ID              int64
	Name            string
	Type            ChallengeType
	StartDate       time.Time
	EndDate         time.Time
	DurationDays    int
	TargetProgress  float64
	CurrentProgress float64
	TargetCategory  string // reduce_category only
	Status          ChallengeStatus
	StreakDays      int // streak only; mirrors CurrentProgress
}

// ChallengeTemplate is a preset a challenge is started from.
type ChallengeTemplate struct {
	Key            string
	Name           string
	Description    string
	Type           ChallengeType
	DurationDays   int
	TargetAmount   float64 // 0 = unset, Start falls back per type
	TargetCategory string
}
