package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/config"
	appHTTP "github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/handler/http"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/pkg/database"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/repository/postgresql"
	holidayService "github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/service/holiday"
	shiftService "github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/service/shift"
	staffService "github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/service/staff"
	wageService "github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/service/wage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		log.Fatal("Invalid REPORT_TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	rateRepo := postgresql.NewStaffRateRepository(db)
	instructionRepo := postgresql.NewPaymentInstructionRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	paymentRepo := postgresql.NewWagePaymentRepository(db)

	engine := wageService.NewEngine(loc)
	staffSvc := staffService.NewStaffService(db, staffRepo, rateRepo, instructionRepo, loc, cfg.Report.PaymentChannels)
	shiftSvc := shiftService.NewShiftService(shiftRepo, staffRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, loc)
	reportSvc := wageService.NewReportService(engine, cfg.Report.CurrencySymbol, staffRepo, rateRepo, instructionRepo, holidayRepo, shiftRepo, paymentRepo)
	paymentSvc := wageService.NewPaymentService(engine, staffRepo, rateRepo, instructionRepo, holidayRepo, shiftRepo, paymentRepo)

	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc, loc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)

	router := appHTTP.NewRouter(
		staffHandler,
		shiftHandler,
		holidayHandler,
		reportHandler,
		paymentHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
