package domain

import (
	"strconv"
)

// Status values shared by offers and requests.
const (
	StatusPending  = "en attente"
	StatusAssigned = "affectée"
)

// AssignmentInProgress is the status every new assignment starts with.
const AssignmentInProgress = "en cours"

type Urgency string

const (
	UrgencyLow      Urgency = "faible"
	UrgencyMedium   Urgency = "moyenne"
	UrgencyHigh     Urgency = "élevée"
	UrgencyCritical Urgency = "critique"
)

// Urgencies lists every urgency level in ascending order.
var Urgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

func (u Urgency) Valid() bool {
	for _, v := range Urgencies {
		if u == v {
			return true
		}
	}
	return false
}

func (u Urgency) Label() string {
	switch u {
	case UrgencyLow:
		return "Low"
	case UrgencyMedium:
		return "Medium"
	case UrgencyHigh:
		return "High"
	case UrgencyCritical:
		return "Critical"
	default:
		return string(u)
	}
}

type Offer struct {
	Id          OfferId    `json:"id"`
	UserId      UserId     `json:"id_utilisateur"`
	CreatedAt   Timestamp  `json:"date_proposition"`
	AvailableAt *Timestamp `json:"disponibilite_date_heure"`
	Location    *Location  `json:"localisation_proposition"`
	Status      string     `json:"statut"`
	Notes       *string    `json:"notes"`
}

func (o Offer) IsPending() bool { return o.Status == StatusPending }

type Request struct {
	Id                   RequestId    `json:"id"`
	UserId               UserId       `json:"id_utilisateur"`
	RequiredBloodGroupId BloodGroupId `json:"id_groupe_sanguin_requis"`
	QuantityMl           Quantity     `json:"quantite_demandee_ml"`
	CreatedAt            Timestamp    `json:"date_demande"`
	Location             *Location    `json:"localisation_demande"`
	Urgency              Urgency      `json:"urgence"`
	Status               string       `json:"statut"`
	Description          string       `json:"description"`
}

func (r Request) IsPending() bool { return r.Status == StatusPending }

type Assignment struct {
	Id         AssignmentId `json:"id"`
	OfferId    OfferId      `json:"id_proposition_don"`
	RequestId  RequestId    `json:"id_demande_don"`
	AdminId    UserId       `json:"id_administrateur"`
	AssignedAt Timestamp    `json:"date_affectation"`
	Status     string       `json:"statut_affectation"`
	AdminNotes *string      `json:"notes_administrateur"`
}

// PendingOffers keeps the offers still waiting for a match, in input order.
func PendingOffers(offers []Offer) []Offer {
	pending := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if o.IsPending() {
			pending = append(pending, o)
		}
	}
	return pending
}

// PendingRequests keeps the requests still waiting for a match, in input order.
func PendingRequests(requests []Request) []Request {
	pending := make([]Request, 0, len(requests))
	for _, r := range requests {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	return pending
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
