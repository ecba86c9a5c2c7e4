package domain

import "math"

// Stats is the aggregate counts object served by the statistics endpoint.
type Stats struct {
	TotalUsers       int `json:"total_utilisateurs"`
	NormalUsers      int `json:"utilisateurs_normaux"`
	Admins           int `json:"administrateurs"`
	TotalOffers      int `json:"total_propositions_don"`
	PendingOffers    int `json:"propositions_en_attente"`
	AssignedOffers   int `json:"propositions_affectees"`
	TotalRequests    int `json:"total_demandes_don"`
	PendingRequests  int `json:"demandes_en_attente"`
	AssignedRequests int `json:"demandes_affectees"`
	TotalAssignments int `json:"total_affectations"`
}

// Percent returns round(part/whole*100). A zero or negative whole is
// replaced by 1 so an empty platform reads 0%.
func Percent(part, whole int) int {
	return int(math.Round(float64(part) / float64(max(whole, 1)) * 100))
}

func (s Stats) OffersMatchedPercent() int     { return Percent(s.AssignedOffers, s.TotalOffers) }
func (s Stats) RequestsSatisfiedPercent() int { return Percent(s.AssignedRequests, s.TotalRequests) }
func (s Stats) AdminsPercent() int            { return Percent(s.Admins, s.TotalUsers) }
