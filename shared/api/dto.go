package api

import "github.com/dondesang/dondesang/shared/domain"

// Request DTOs sent by the frontend to the donation API.

type CreateUserRequest struct {
	LastName     string               `json:"nom"`
	FirstName    string               `json:"prenom"`
	Email        string               `json:"email"`
	Password     string               `json:"mot_de_passe"`
	Role         domain.Role          `json:"role"`
	Address      string               `json:"adresse"`
	City         string               `json:"ville"`
	Phone        string               `json:"telephone"`
	BirthDate    *string              `json:"date_naissance"`
	Gender       string               `json:"genre"`
	BloodGroupId *domain.BloodGroupId `json:"id_groupe_sanguin"`
}

type CreateOfferRequest struct {
	UserId      domain.UserId `json:"id_utilisateur"`
	AvailableAt string        `json:"disponibilite_date_heure"`
	Location    string        `json:"localisation_proposition"`
	Notes       string        `json:"notes"`
	Status      string        `json:"statut"`
}

type CreateRequestRequest struct {
	UserId               domain.UserId       `json:"id_utilisateur"`
	RequiredBloodGroupId domain.BloodGroupId `json:"id_groupe_sanguin_requis"`
	QuantityMl           domain.Quantity     `json:"quantite_demandee_ml"`
	Location             string              `json:"localisation_demande"`
	Urgency              domain.Urgency      `json:"urgence"`
	Description          string              `json:"description"`
}

type CreateAssignmentRequest struct {
	OfferId    domain.OfferId   `json:"id_proposition_don"`
	RequestId  domain.RequestId `json:"id_demande_don"`
	AdminId    domain.UserId    `json:"id_administrateur"`
	Status     string           `json:"statut_affectation"`
	AdminNotes string           `json:"notes_administrateur"`
}

// Response DTOs

// ErrorResponse is the error body of the API. Detail is usually a string but
// validation failures carry a list of objects, so it is kept raw.
type ErrorResponse struct {
	Detail any `json:"detail"`
}
