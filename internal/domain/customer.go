package domain

type Customer struct {
	ID          int    `json:"id"`
	PersonType  string `json:"personType,omitempty"` // FISICA, JURIDICA
	CpfCnpj     string `json:"cpfCnpj,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	FantasyName string `json:"fantasyName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}
