package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/logging"
	"github.com/dmitrijs2005/fintrack/internal/server/config"
)

func NewRouter(cfg *config.Config, logger logging.Logger, us UserService, ls LedgerService) http.Handler {
	h := &handler{users: us, ledger: ls, logger: logger}
	authn := &authMiddleware{secret: []byte(cfg.SecretKey), logger: logger}
	limiter := newRateLimiter(cfg.AuthRateLimitRPM)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         60 * 15,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Post(common.PathRegister, h.Register)
		r.Post(common.PathLogin, h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(authn.RequireAuth)
		r.Get(common.PathListIncomes, h.ListIncomes)
		r.Post(common.PathAddIncome, h.AddIncome)
		r.Get(common.PathListExpenses, h.ListExpenses)
		r.Post(common.PathAddExpense, h.AddExpense)
		r.Get(common.PathGetBalance, h.GetBalance)
	})

	return r
}
