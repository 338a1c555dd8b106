package dto

// Envelope es la forma uniforme de toda respuesta exitosa.
// DataCount es siempre el largo de la colección principal, incluso cuando es
// un singleton envuelto en un arreglo de un elemento: convención heredada que
// se preserva por compatibilidad.
type Envelope struct {
	Success   bool        `json:"success"`
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Token     string      `json:"token,omitempty"`
	DataCount int         `json:"dataCount"`
	Data      interface{} `json:"data,omitempty"`
}

// ErrorBody detalle de una falla: status HTTP y un único mensaje legible.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorEnvelope es la forma uniforme de toda respuesta fallida.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}
