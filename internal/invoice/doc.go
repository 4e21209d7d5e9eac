// Package invoice derives the dashboard views over an invoice collection:
// filtering, searching and sorting ([Query]), portfolio figures
// ([Aggregate]) and risk bucketing ([RiskLevelFor]). Every function is pure
// and never modifies its input.
package invoice
