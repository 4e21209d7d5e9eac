package models

// BillingPlan is the subscription shown on the billing page.
type BillingPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Status   string   `json:"status"`
	Features []string `json:"features"`
}

// SettingsSection is one entry of the settings page. Sections are not
// interactive yet.
type SettingsSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
