package store

import (
	"github.com/budgetcopain/backend/internal/models"
)

// UserConfigPatch is a partial update of the user configuration. Only
// fields that are set are changed.
type UserConfigPatch struct {
	FirstName           *string                  `json:"firstName"`
	Email               *string                  `json:"email"`
	MainGoal            *models.MainGoal         `json:"mainGoal"`
	FinancialComfort    *models.FinancialComfort `json:"financialComfort"`
	UsageMode           *models.UsageMode        `json:"usageMode"`
	Currency            *string                  `json:"currency"`
	FirstDayOfWeek      *int                     `json:"firstDayOfWeek"`
	SubscriptionPlan    *models.SubscriptionPlan `json:"subscriptionPlan"`
	OnboardingCompleted *bool                    `json:"onboardingCompleted"`
}

func (p UserConfigPatch) validate() error {
	if p.MainGoal != nil && !p.MainGoal.Valid() {
		return models.ErrMainGoal
	}
	if p.FinancialComfort != nil && !p.FinancialComfort.Valid() {
		return models.ErrFinancialComfort
	}
	if p.UsageMode != nil && !p.UsageMode.Valid() {
		return models.ErrUsageMode
	}
	if p.SubscriptionPlan != nil && !p.SubscriptionPlan.Valid() {
		return models.ErrSubscriptionPlan
	}
	return nil
}

func (p UserConfigPatch) apply(config *models.UserConfig) {
	if p.FirstName != nil {
		config.FirstName = *p.FirstName
	}
	if p.Email != nil {
		config.Email = *p.Email
	}
	if p.MainGoal != nil {
		config.MainGoal = *p.MainGoal
	}
	if p.FinancialComfort != nil {
		config.FinancialComfort = *p.FinancialComfort
	}
	if p.UsageMode != nil {
		config.UsageMode = *p.UsageMode
	}
	if p.Currency != nil {
		config.Currency = *p.Currency
	}
	if p.FirstDayOfWeek != nil {
		config.FirstDayOfWeek = *p.FirstDayOfWeek
	}
	if p.SubscriptionPlan != nil {
		config.SubscriptionPlan = *p.SubscriptionPlan
	}
	if p.OnboardingCompleted != nil {
		config.OnboardingCompleted = *p.OnboardingCompleted
	}
}

// UserConfig returns the current user configuration. Before onboarding
// there is none, which is reported as models.ErrUserConfigNotFound.
func (s *Store) UserConfig() (models.UserConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.UserConfig == nil {
		return models.UserConfig{}, models.ErrUserConfigNotFound
	}

	return *s.state.UserConfig, nil
}

// UpdateUserConfig applies a partial update to the user configuration.
// When no configuration exists yet, the patch is applied on top of the
// defaults. A sign-in before onboarding already carries profile data
// that must not be lost.
func (s *Store) UpdateUserConfig(patch UserConfigPatch) (models.UserConfig, error) {
	err := patch.validate()
	if err != nil {
		return models.UserConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	config := models.DefaultUserConfig()
	if s.state.UserConfig != nil {
		config = *s.state.UserConfig
	}

	patch.apply(&config)

	s.state.UserConfig = &config
	s.persist()

	return config, nil
}

// CompleteOnboarding creates the user configuration. It starts from the
// defaults, applies the patch and marks onboarding as completed.
func (s *Store) CompleteOnboarding(patch UserConfigPatch) (models.UserConfig, error) {
	err := patch.validate()
	if err != nil {
		return models.UserConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	config := models.DefaultUserConfig()
	if s.state.UserConfig != nil {
		config = *s.state.UserConfig
	}

	patch.apply(&config)
	config.OnboardingCompleted = true

	s.state.UserConfig = &config
	s.persist()

	return config, nil
}
