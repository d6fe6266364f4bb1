package store

import (
	"strings"

	"github.com/founderlink/backend/internal/model"
)

// RecordStore defines the record-query surface the engine consumes.
type RecordStore interface {
	ListStartups() ([]*model.Startup, error)
	FilterStartupsByCategory(category string) ([]*model.Startup, error)
	ListInvestors() ([]*model.Investor, error)
	SaveStartup(startup *model.Startup) error
	SaveInvestor(investor *model.Investor) error
	Close() error
}

// ApprovedInvestors narrows a listing to approved investor accounts.
func ApprovedInvestors(investors []*model.Investor) []*model.Investor {
	var approved []*model.Investor
	for _, inv := range investors {
		if inv.Approved && strings.EqualFold(inv.Role, "investor") {
			approved = append(approved, inv)
		}
	}
	return approved
}
