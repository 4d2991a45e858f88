package http

import (
	"log/slog"
	"net/http"

	assignhttp "github.com/eduflex-lms/backend/assign/http"
	coursehttp "github.com/eduflex-lms/backend/course/http"
	"github.com/eduflex-lms/backend/logger"
	quizhttp "github.com/eduflex-lms/backend/quiz/http"
	"github.com/eduflex-lms/backend/user/auth"
	userhttp "github.com/eduflex-lms/backend/user/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	userHandler *userhttp.UserHttpHandler,
	courseHandler *coursehttp.CourseHttpHandler,
	assignHandler *assignhttp.AssignHttpHandler,
	quizHandler *quizhttp.QuizHttpHandler,
	dashboard *DashboardHandler,
	jwtKey []byte,
	corsOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("eduflex", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": "v1.0",
			"env":     "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))
	router.Use(requestLoggerMiddleware)

	userHandler.RegisterRoutes(router)
	courseHandler.RegisterRoutes(router)
	assignHandler.RegisterRoutes(router)
	quizHandler.RegisterRoutes(router)
	router.Get("/professor/dashboard", dashboard.ProfessorDashboard)

	return &HttpServer{router: router}
}

// requestLoggerMiddleware scopes the context logger to the authenticated
// caller so service errors logged downstream carry the user id.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if claims, ok := ctx.Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims); ok && claims != nil {
			ctx = logger.WithUserID(ctx, claims.UUID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HttpServer) Router() *chi.Mux {
	return s.router
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}
