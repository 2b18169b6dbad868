package domain

import (
	"fmt"
	"net/url"
	"time"
)

type Event struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	EventDate             time.Time `json:"event_date"`
	MinTeamSize           int       `json:"min_team_size"`
	MaxTeamSize           int       `json:"max_team_size"`
	RegistrationFeesInINR int64     `json:"registration_fees_in_inr"`
	EntryPassPriceInINR   int64     `json:"entry_pass_price_in_inr"`
	UpiAccountNumber      string    `json:"upi_account_number"`
	UpiIfsc               string    `json:"upi_ifsc"`
	OrganiserID           string    `json:"organiser_id"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type CreateEventInput struct {
	Title                 string
	Description           string
	EventDate             time.Time
	MinTeamSize           int
	MaxTeamSize           int
	RegistrationFeesInINR int64
	EntryPassPriceInINR   int64
	UpiAccountNumber      string
	UpiIfsc               string
}

// PriceFor returns the base price of the event for the given order kind.
func (e *Event) PriceFor(kind Kind) int64 {
	if kind == KindEntryPass {
		return e.EntryPassPriceInINR
	}
	return e.RegistrationFeesInINR
}

// ValidateTeamSize checks the number of members besides the leader.
// Both bounds are inclusive: a team of minTeamSize..maxTeamSize people is accepted.
func (e *Event) ValidateTeamSize(extraMembers int) error {
	minExtra := e.MinTeamSize - 1
	maxExtra := e.MaxTeamSize - 1

	if extraMembers < minExtra {
		return fmt.Errorf("%w: team needs at least %d members, got %d",
			ErrValidation, e.MinTeamSize, extraMembers+1)
	}
	if extraMembers > maxExtra {
		return fmt.Errorf("%w: team allows at most %d members, got %d",
			ErrValidation, e.MaxTeamSize, extraMembers+1)
	}

	return nil
}

// UPILink builds a UPI deep link paying amount to the event's account.
func (e *Event) UPILink(payee string, amount int64) string {
	q := url.Values{}
	q.Set("pa", fmt.Sprintf("%s@%s.ifsc.npci", e.UpiAccountNumber, e.UpiIfsc))
	q.Set("pn", payee)
	q.Set("am", fmt.Sprintf("%d", amount))
	q.Set("cu", "INR")

	return "upi://pay?" + q.Encode()
}

func (in CreateEventInput) Validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.MinTeamSize < 1 {
		return fmt.Errorf("%w: min team size must be at least 1", ErrValidation)
	}
	if in.MaxTeamSize < in.MinTeamSize {
		return fmt.Errorf("%w: max team size must not be less than min team size", ErrValidation)
	}
	if in.RegistrationFeesInINR < 0 || in.EntryPassPriceInINR < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrValidation)
	}
	if (in.RegistrationFeesInINR > 0 || in.EntryPassPriceInINR > 0) &&
		(in.UpiAccountNumber == "" || in.UpiIfsc == "") {
		return fmt.Errorf("%w: paid events need a UPI account number and IFSC", ErrValidation)
	}
	return nil
}
