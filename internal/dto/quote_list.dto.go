package dto

import "github.com/RenoBuildCo/reno-marketplace/internal/models"

// QuoteListItem flattens a quote with the names the comparison screen
// renders, sparing the client two extra lookups per row.
type QuoteListItem struct {
	models.Quote
	ProjectName    string `json:"project_name"`
	ContractorName string `json:"contractor_name"`
}
