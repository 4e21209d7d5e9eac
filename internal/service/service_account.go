package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-invoice-audit/models"
)

var currentPlan = models.BillingPlan{
	Name:   "Professional",
	Price:  "₹14,999/month",
	Status: "Active",
	Features: []string{
		"Up to 5,000 invoices/month",
		"Advanced AI fraud detection",
		"Priority support",
		"Up to 10 users",
	},
}

var settingsSections = []models.SettingsSection{
	{Title: "Notifications", Description: "Manage email and push notification preferences"},
	{Title: "Security", Description: "Two-factor authentication and password settings"},
	{Title: "Appearance", Description: "Theme, language, and display preferences"},
	{Title: "Integrations", Description: "Connect with ERP, accounting software, and APIs"},
}

type accountService struct {
	sessions SessionStore
}

func NewAccountService(sessions SessionStore) AccountService {
	return &accountService{sessions: sessions}
}

func (a *accountService) Billing(ctx context.Context) (models.BillingPlan, error) {
	if !a.sessions.State().IsLoggedIn {
		return models.BillingPlan{}, ErrNotLoggedIn
	}

	plan := currentPlan
	plan.Features = slices.Clone(currentPlan.Features)
	return plan, nil
}

func (a *accountService) Settings(ctx context.Context) ([]models.SettingsSection, error) {
	if !a.sessions.State().IsLoggedIn {
		return nil, ErrNotLoggedIn
	}
	return slices.Clone(settingsSections), nil
}
