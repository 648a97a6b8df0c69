package dto

// APIResponse envoltura estándar de respuestas exitosas: {success, message?, data?}.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// ErrorResponse cuerpo de error HTTP. Code es verificable por máquina;
// Message es para humanos. Fields enumera campos requeridos ausentes y
// Errors lleva los mensajes por campo cuando el rechazo viene del store.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Error construye un ErrorResponse básico.
func Error(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
