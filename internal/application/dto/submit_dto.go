package dto

// Estados de un envío de formulario tal como los ve el frontend.
const (
	SubmitSuccess  = "success"
	SubmitConflict = "conflict"
	SubmitError    = "error"
)

// ConflictPrompt diálogo de conflicto: el registro existente y las rutas para verlo o editarlo.
// Si la verificación falló, Record es nil y solo se ofrece cancelar.
type ConflictPrompt struct {
	Message string   `json:"message"`
	Record  any      `json:"record,omitempty"`
	Options []Option `json:"options"`
}

// SubmitResponse resultado de un alta/edición.
type SubmitResponse struct {
	State    string          `json:"state"`
	ID       string          `json:"id,omitempty"`
	Redirect string          `json:"redirect,omitempty"`
	Message  string          `json:"message,omitempty"`
	Conflict *ConflictPrompt `json:"conflict,omitempty"`
	Form     any             `json:"form,omitempty"`
}

// CheckResponse resultado de la verificación al salir del campo (blur).
// Checked es false cuando la clave todavía no es válida y no se consultó el backend.
type CheckResponse struct {
	Checked  bool            `json:"checked"`
	Conflict bool            `json:"conflict"`
	Prompt   *ConflictPrompt `json:"prompt,omitempty"`
}

// DeleteResponse resultado de una baja. Sin confirmación no se borra nada.
type DeleteResponse struct {
	Deleted      bool     `json:"deleted"`
	Message      string   `json:"message,omitempty"`
	Confirmation []Option `json:"confirmation,omitempty"`
	Items        any      `json:"items,omitempty"`
}
