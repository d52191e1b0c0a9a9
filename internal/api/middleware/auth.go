package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers"
)

// AdminKeyHeader заголовок с административным ключом
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth проверяет административный ключ в заголовке запроса.
// Пустой сконфигурированный ключ закрывает административные маршруты
func AdminAuth(apiKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				handlers.RespondForbidden(w, "административный доступ отключен")
				return
			}

			got := r.Header.Get(AdminKeyHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, "требуется заголовок "+AdminKeyHeader)
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				handlers.RespondForbidden(w, "неверный административный ключ")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
