package formatters

// MascararTelefone aplica a máscara brasileira de telefone sobre o digitado.
// Celular: (11) 98888-7777; fixo: (11) 8888-7777.
func MascararTelefone(entrada string) string {
	v := apenasDigitos(entrada)
	if len(v) > 11 {
		v = v[:11]
	}
	switch {
	case len(v) > 10:
		return "(" + v[0:2] + ") " + v[2:7] + "-" + v[7:]
	case len(v) > 6:
		return "(" + v[0:2] + ") " + v[2:6] + "-" + v[6:]
	case len(v) > 2:
		return "(" + v[0:2] + ") " + v[2:]
	case len(v) > 0:
		return "(" + v
	default:
		return v
	}
}
