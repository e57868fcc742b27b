package model

// Ruoli disponibili per un operatore.
const (
	RuoloAdmin  = "admin"
	RuoloAgente = "agent"
)

// Operatore is a system account that can log in and register sales.
// Ruolo: "admin" | "agent". The protected account (the seeded administrator)
// can never be deleted through operator management.
type Operatore struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Ruolo    string `json:"ruolo"`
	Protetto bool   `json:"protetto,omitempty"`
}

// Attore identifies the operator performing an operation.
// Authorization decisions use Ruolo exclusively.
type Attore struct {
	Email string
	Ruolo string
}

func (a Attore) IsAdmin() bool { return a.Ruolo == RuoloAdmin }
