package models

// Referencia mapeia um código de material (nm) para campos descritivos
// arbitrários. Fora o "nm", os campos são opacos e preservados como chegam.
type Referencia map[string]any

// NM devolve o código de material da referência, ou "" quando ausente.
func (r Referencia) NM() string {
	nm, _ := r["nm"].(string)
	return nm
}
