package request

import (
	"daycare-waitlist/internal/usecase/commands"

	"github.com/google/uuid"
)

type EnrollRequest struct {
	ClientID  uuid.UUID `json:"clientId" binding:"required"`
	ChildName string    `json:"childName" binding:"required,max=255"`
	// pointer so that age 0 passes "required"
	Age      *int   `json:"age" binding:"required,min=0"`
	Location string `json:"location" binding:"required"`
}

func (r *EnrollRequest) ToInput() commands.EnrollInput {
	return commands.EnrollInput{
		ClientID:  r.ClientID,
		ChildName: r.ChildName,
		Age:       *r.Age,
		Location:  r.Location,
	}
}
