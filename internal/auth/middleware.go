package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

// UsuarioIDKey carrega o ID do corretor autenticado no contexto da requisição.
const UsuarioIDKey ctxKey = "usuarioID"

// MiddlewareAutenticacao exige um Bearer token válido e injeta o corretor no contexto.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UsuarioIDKey, claims.UsuarioID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsuarioDoContexto extrai o ID do corretor colocado pelo middleware.
func UsuarioDoContexto(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UsuarioIDKey).(uint)
	return id, ok
}
