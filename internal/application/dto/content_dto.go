package dto

// ContactRequest mensaje del formulario público de contacto.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// StatsDTO contadores del dashboard de administración.
type StatsDTO struct {
	Collections int64 `json:"collections"`
	Exhibitions int64 `json:"exhibitions"`
	Events      int64 `json:"events"`
	News        int64 `json:"news"`
	// Contacts cuenta solo los mensajes sin atender (status "new").
	Contacts int64 `json:"contacts"`
}
