package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	staffHandler StaffHandler,
	shiftHandler ShiftHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
	paymentHandler PaymentHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wage-engine"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/reports", func(r chi.Router) {
			r.Get("/wages", reportHandler.WeeklyGrid)
			r.Get("/shifts", reportHandler.FlatReport)
			r.Get("/payments", reportHandler.PaymentReport)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", paymentHandler.MarkAsPaid)
			r.Get("/", paymentHandler.List)
			r.Get("/{id}", paymentHandler.Get)
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", staffHandler.List)
			r.Post("/", staffHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", staffHandler.Get)
				r.Put("/", staffHandler.Update)
				r.Delete("/", staffHandler.Delete)

				r.Route("/rates", func(r chi.Router) {
					r.Get("/", staffHandler.ListRates)
					r.Post("/", staffHandler.CreateRate)
					r.Delete("/{rateID}", staffHandler.DeleteRate)
				})

				r.Route("/instructions", func(r chi.Router) {
					r.Get("/", staffHandler.ListInstructions)
					r.Post("/", staffHandler.CreateInstruction)
					r.Put("/{instructionID}", staffHandler.UpdateInstruction)
					r.Delete("/{instructionID}", staffHandler.DeleteInstruction)
				})
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", shiftHandler.List)
			r.Post("/", shiftHandler.Create)
			r.Get("/{id}", shiftHandler.Get)
			r.Put("/{id}", shiftHandler.Update)
			r.Delete("/{id}", shiftHandler.Delete)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Create)
			r.Post("/clone", holidayHandler.CloneYear)
			r.Get("/years", holidayHandler.Years)
			r.Get("/{id}", holidayHandler.Get)
			r.Put("/{id}", holidayHandler.Update)
			r.Delete("/{id}", holidayHandler.Delete)
		})
	})
	return r
}
