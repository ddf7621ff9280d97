package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"csa-console/internal/model"
	"csa-console/internal/scoring"
	"csa-console/internal/service"
	"csa-console/internal/session"
)

// AuthService вход, выход и проверка сессии.
type AuthService interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (session.Session, error)
}

// RosterService экран "My Team".
type RosterService interface {
	View(ctx context.Context, sess session.Session, scheme, search string) (service.TeamView, error)
	BeginEdit(ctx context.Context, sess session.Session) error
	UpdateMember(ctx context.Context, sess session.Session, id string, patch service.MemberPatch) error
	ResetPassword(ctx context.Context, sess session.Session, id string) (string, error)
	QueueDelete(ctx context.Context, sess session.Session, id, pin string) error
	Cancel(ctx context.Context, sess session.Session) error
	Save(ctx context.Context, sess session.Session) (model.SaveReport, error)
	Reports(ctx context.Context, sess session.Session, limit int) ([]model.SaveReport, error)
	Export(ctx context.Context, sess session.Session, scheme, search string, w io.Writer) error
}

// CatalogService схемы, вопросы и промпт.
type CatalogService interface {
	Schemes(ctx context.Context, sess session.Session) ([]model.Scheme, error)
	DistinctSchemes(ctx context.Context, sess session.Session) ([]string, error)
	CreateScheme(ctx context.Context, sess session.Session, name, fileURL string) (model.Message, error)
	DeleteScheme(ctx context.Context, sess session.Session, name, pin string) error
	Questions(ctx context.Context, sess session.Session, scheme string) ([]model.Question, error)
	Question(ctx context.Context, sess session.Session, id string) (model.Question, error)
	CreateQuestion(ctx context.Context, sess session.Session, q model.Question) (string, error)
	UpdateQuestion(ctx context.Context, sess session.Session, id string, q model.Question) error
	DeleteQuestion(ctx context.Context, sess session.Session, id, pin string) error
	Prompt(ctx context.Context, sess session.Session) (model.Prompt, error)
	UpdatePrompt(ctx context.Context, sess session.Session, text string) (model.Message, error)
	RevertPrompt(ctx context.Context, sess session.Session, pin string) error
	RollbackPrompt(ctx context.Context, sess session.Session) (model.Message, error)
}

// ProgressService попытки и баллы стажёров.
type ProgressService interface {
	Attempts(ctx context.Context, sess session.Session, userID string) ([]model.Attempt, error)
	Scores(ctx context.Context, sess session.Session, userID string) (scoring.Summary, error)
	ExportAttempts(ctx context.Context, sess session.Session, userID string, w io.Writer) (string, error)
}

type Handler struct {
	Auth     AuthService
	Roster   RosterService
	Catalog  CatalogService
	Progress ProgressService
	Log      *slog.Logger

	// AllowedOrigins origins дашбордов для CORS. Пустой список выключает CORS.
	AllowedOrigins []string
	// SecureCookie ставить Secure на cookie сессии.
	SecureCookie bool
}

func NewHandler(auth AuthService, roster RosterService, catalog CatalogService, progress ProgressService, log *slog.Logger) *Handler {
	return &Handler{
		Auth:     auth,
		Roster:   roster,
		Catalog:  catalog,
		Progress: progress,
		Log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	if len(h.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", sessionHeader, pinHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", h.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
		r.With(h.requireSession).Get("/me", h.handleMe)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Route("/team", func(r chi.Router) {
			r.Get("/", h.handleTeamView)
			r.Post("/edit", h.handleTeamEdit)
			r.Post("/cancel", h.handleTeamCancel)
			r.Post("/save", h.handleTeamSave)
			r.Get("/export.csv", h.handleTeamExport)
			r.Get("/saves", h.handleTeamSaves)
			r.Patch("/members/{id}", h.handleMemberUpdate)
			r.Post("/members/{id}/password", h.handleMemberResetPassword)
			r.Delete("/members/{id}", h.handleMemberDelete)
		})

		r.Route("/schemes", func(r chi.Router) {
			r.Get("/", h.handleSchemes)
			r.Get("/distinct", h.handleDistinctSchemes)
			r.Post("/", h.handleSchemeCreate)
			r.Delete("/{name}", h.handleSchemeDelete)
			r.Get("/{name}/questions", h.handleSchemeQuestions)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Post("/", h.handleQuestionCreate)
			r.Get("/{id}", h.handleQuestionGet)
			r.Put("/{id}", h.handleQuestionUpdate)
			r.Delete("/{id}", h.handleQuestionDelete)
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/attempts", h.handleUserAttempts)
			r.Get("/attempts.csv", h.handleUserAttemptsExport)
			r.Get("/scores", h.handleUserScores)
		})

		r.Route("/prompt", func(r chi.Router) {
			r.Get("/", h.handlePromptGet)
			r.Put("/", h.handlePromptUpdate)
			r.Post("/revert", h.handlePromptRevert)
			r.Post("/rollback", h.handlePromptRollback)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.Log.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
