package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Estados de aviso, equivalentes a los toasts del panel.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// NoticeDurationMs duración por defecto de un aviso.
const NoticeDurationMs = 3000

// Notice aviso para el usuario tras una operación (alta, edición, borrado).
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DurationMs  int    `json:"duration_ms"`
	Closable    bool   `json:"closable"`
}
