package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

type Gender = string

const (
	GenderMale   Gender = "Homme"
	GenderFemale Gender = "Femme"
)

// User is a platform account as returned by the API. The password never
// travels back from the server.
type User struct {
	Id           UserId        `json:"id"`
	LastName     string        `json:"nom"`
	FirstName    string        `json:"prenom"`
	Email        Email         `json:"email"`
	Role         Role          `json:"role"`
	Address      *string       `json:"adresse"`
	City         *string       `json:"ville"`
	Phone        *string       `json:"telephone"`
	BirthDate    *string       `json:"date_naissance"`
	Gender       *Gender       `json:"genre"`
	BloodGroupId *BloodGroupId `json:"id_groupe_sanguin"`
}

type BloodGroup struct {
	Id   BloodGroupId `json:"id"`
	Name string       `json:"nom_groupe"`
}

// BloodGroupName returns the display name of id, or "#id" when the group is unknown.
func BloodGroupName(groups []BloodGroup, id BloodGroupId) string {
	for _, g := range groups {
		if g.Id == id {
			return g.Name
		}
	}
	return "#" + itoa(id)
}

// DateOnly is the wire layout of birth dates.
const DateOnly = time.DateOnly

// EmailLocalPart returns the part of email before '@'.
func EmailLocalPart(email Email) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
