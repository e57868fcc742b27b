package model

// Agente is a sales agent belonging to exactly one operator, referenced by
// email (no enforced foreign key). Visible only to its owning operator
// unless the viewer is an administrator.
type Agente struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	OperatoreEmail string `json:"operatoreEmail"`
	Telefono       string `json:"telefono,omitempty"`
	Zona           string `json:"zona,omitempty"`
}
