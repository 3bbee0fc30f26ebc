package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/fleetpos/fleet-pos/internal/auth"
	"github.com/fleetpos/fleet-pos/internal/db"
	"github.com/fleetpos/fleet-pos/internal/handlers"
	"github.com/fleetpos/fleet-pos/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment")
	}
	log.SetFormatter(&log.JSONFormatter{})

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.WithField("database", db.DatabaseName()).Info("Connected to MongoDB")

	collections := db.NewCollections(client)
	snapshots := db.NewSnapshotLoader(collections)

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	authMW := middleware.NewAuthMiddleware(authService)
	rateMW := middleware.NewRateLimitMiddleware()

	authHandler := handlers.NewAuthHandler(authService, collections.Users)
	vehicleHandler := handlers.NewVehicleHandler(collections.Vehicles)
	transactionHandler := handlers.NewTransactionHandler(collections.Incomes, collections.Expenses, collections.Vehicles)
	employeeHandler := handlers.NewEmployeeHandler(collections.Employees, collections.Vehicles)
	attendanceHandler := handlers.NewAttendanceHandler(collections.Attendance, collections.Employees)
	reportHandler := handlers.NewReportHandler(snapshots)
	dashboardHandler := handlers.NewDashboardHandler(snapshots)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("/api/auth/change-password", authHandler.ChangePassword)

	mux.HandleFunc("/api/vehicles", vehicleHandler.Handle)
	mux.HandleFunc("/api/vehicles/", vehicleHandler.HandleByID)

	mux.HandleFunc("/api/incomes", transactionHandler.HandleIncomes)
	mux.HandleFunc("/api/expenses", transactionHandler.HandleExpenses)

	mux.HandleFunc("/api/employees", employeeHandler.Handle)
	mux.HandleFunc("/api/employees/", employeeHandler.HandleByID)

	mux.HandleFunc("/api/attendance", attendanceHandler.Handle)
	mux.HandleFunc("/api/attendance/employee/", attendanceHandler.HandleByEmployee)

	mux.Handle("/api/reports", authMW.RequirePermission("generate_reports")(http.HandlerFunc(reportHandler.Generate)))
	mux.Handle("/api/reports/export", authMW.RequirePermission("generate_reports")(http.HandlerFunc(reportHandler.Export)))

	mux.HandleFunc("/api/dashboard/stats", dashboardHandler.Stats)

	handler := rateMW.RateLimit(300, 60)(authMW.Authenticate(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
