package domain

type (
	Email    = string
	Password = string
	UserId   = int64

	BloodGroupId = int64
	OfferId      = int64
	RequestId    = int64
	AssignmentId = int64

	Location = string
	Quantity = int
)
