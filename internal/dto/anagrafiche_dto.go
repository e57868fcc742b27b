package dto

// PutOperatoreRequest creates or replaces an operator. Empty ID = create.
// An empty password on replace keeps the existing one.
type PutOperatoreRequest struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password"`
	Ruolo    string `json:"ruolo"    validate:"required,oneof=admin agent"`
}

// PutAgenteRequest creates or replaces an agent. Empty ID = create.
type PutAgenteRequest struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"           validate:"required"`
	Email          string `json:"email"          validate:"omitempty,email"`
	OperatoreEmail string `json:"operatoreEmail" validate:"required,email"`
	Telefono       string `json:"telefono"`
	Zona           string `json:"zona"`
}

type SetMetodiRequest struct {
	Metodi []string `json:"metodi" validate:"dive,min=1"`
}
