// Package models implements the data model of the BudgetCopain backend.
//
// All types serialize to the JSON document layout that is persisted as the
// application state, so the same structs are used in memory, on the wire and
// in durable storage.
package models

// MainGoal is the primary thing a user wants to achieve with the app.
type MainGoal string

const (
	GoalSave    MainGoal = "save"
	GoalControl MainGoal = "control"
	GoalInvest  MainGoal = "invest"
	GoalClear   MainGoal = "clear"
)

// Valid reports whether the value is part of the enumeration.
func (g MainGoal) Valid() bool {
	switch g {
	case GoalSave, GoalControl, GoalInvest, GoalClear:
		return true
	}
	return false
}

// FinancialComfort is the user's self-rating of their financial situation.
type FinancialComfort string

const (
	ComfortComfortable FinancialComfort = "comfortable"
	ComfortBalanced    FinancialComfort = "balanced"
	ComfortTight       FinancialComfort = "tight"
)

func (f FinancialComfort) Valid() bool {
	switch f {
	case ComfortComfortable, ComfortBalanced, ComfortTight:
		return true
	}
	return false
}

// UsageMode describes how transactions enter the app.
type UsageMode string

const (
	ModeManual UsageMode = "manual"
	ModeBank   UsageMode = "bank"
	ModeMixed  UsageMode = "mixed"
)

func (m UsageMode) Valid() bool {
	switch m {
	case ModeManual, ModeBank, ModeMixed:
		return true
	}
	return false
}

// SubscriptionPlan is the plan the user is subscribed to.
type SubscriptionPlan string

const (
	PlanFree     SubscriptionPlan = "free"
	PlanMonthly  SubscriptionPlan = "monthly"
	PlanAnnual   SubscriptionPlan = "annual"
	PlanLifetime SubscriptionPlan = "lifetime"
)

func (p SubscriptionPlan) Valid() bool {
	switch p {
	case PlanFree, PlanMonthly, PlanAnnual, PlanLifetime:
		return true
	}
	return false
}

// UserConfig is the profile and preferences singleton. It is nil in the
// application state until the first sign-in or anonymous entry and is reset
// to nil on logout.
type UserConfig struct {
	FirstName           string           `json:"firstName" example:"Marie" default:""`
	Email               string           `json:"email" example:"marie@example.com" default:""`
	MainGoal            MainGoal         `json:"mainGoal" example:"save" default:"save"`
	FinancialComfort    FinancialComfort `json:"financialComfort" example:"balanced" default:"balanced"`
	UsageMode           UsageMode        `json:"usageMode" example:"manual" default:"manual"`
	Currency            string           `json:"currency" example:"€" default:"€"`
	FirstDayOfWeek      int              `json:"firstDayOfWeek" example:"1" default:"1"`
	SubscriptionPlan    SubscriptionPlan `json:"subscriptionPlan" example:"free" default:"free"`
	OnboardingCompleted bool             `json:"onboardingCompleted" example:"false" default:"false"`
}

// DefaultUserConfig returns the configuration a user starts out with before
// any onboarding answers are recorded.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		FirstName:           "",
		Email:               "",
		MainGoal:            GoalSave,
		FinancialComfort:    ComfortBalanced,
		UsageMode:           ModeManual,
		Currency:            "€",
		FirstDayOfWeek:      1,
		SubscriptionPlan:    PlanFree,
		OnboardingCompleted: false,
	}
}
