package frontend_domain

import (
	"fmt"

	"github.com/dondesang/dondesang/shared/domain"
)

func OfferLabel(o domain.Offer) string {
	location := "-"
	if o.Location != nil && *o.Location != "" {
		location = *o.Location
	}
	return fmt.Sprintf("Offer #%d – user %d – %s", o.Id, o.UserId, location)
}

func RequestLabel(r domain.Request, groups []domain.BloodGroup) string {
	return fmt.Sprintf("Request #%d – %s – %d ml – %s",
		r.Id, domain.BloodGroupName(groups, r.RequiredBloodGroupId), r.QuantityMl, r.Urgency.Label())
}
