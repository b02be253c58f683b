package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	domainAppointment "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/handlers"
	"github.com/BruksfildServices01/vet-scheduler/internal/metrics"
	"github.com/BruksfildServices01/vet-scheduler/internal/middleware"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
	ucAppointment "github.com/BruksfildServices01/vet-scheduler/internal/usecase/appointment"
	ucPet "github.com/BruksfildServices01/vet-scheduler/internal/usecase/pet"
	ucUser "github.com/BruksfildServices01/vet-scheduler/internal/usecase/user"
	ucVet "github.com/BruksfildServices01/vet-scheduler/internal/usecase/vet"
)

type Repositories struct {
	Users        domainUser.Repository
	Pets         domainPet.Repository
	Vets         domainVet.Repository
	Appointments domainAppointment.Repository
}

// Deps reúne a infraestrutura montada em main. RateLimiter nil desliga o
// limitador; Cache nil usa cache.Nop.
type Deps struct {
	Repos  Repositories
	Audit  audit.Store
	Cache  cache.Cache
	Hasher security.Hasher
	Issuer *auth.Issuer

	Metrics     *metrics.Collector
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter

	Logger      *slog.Logger
	CORSOrigins []string
}

func NewEngine(deps Deps) *gin.Engine {
	r := gin.New()

	if deps.Cache == nil {
		deps.Cache = cache.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.CORSMiddleware(deps.CORSOrigins))
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}

	RegisterRoutes(r, deps)

	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	repos := deps.Repos

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	recorder := audit.NewRecorder(deps.Audit)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getUserUC := ucUser.NewGetUser(repos.Users, deps.Cache)
	getVetUC := ucVet.NewGetVet(repos.Vets, deps.Cache)
	listPetsUC := ucPet.NewListPets(repos.Pets, repos.Users)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		ucUser.NewCreateUser(repos.Users, deps.Hasher, recorder),
		getUserUC,
		ucUser.NewUpdateUser(repos.Users, deps.Hasher, deps.Cache, recorder),
		ucUser.NewDeleteUser(repos.Users, deps.Cache, recorder),
		ucUser.NewListUsers(repos.Users),
		listPetsUC,
	)

	petHandler := handlers.NewPetHandler(
		ucPet.NewCreatePet(repos.Pets, repos.Users, recorder),
		ucPet.NewGetPet(repos.Pets, deps.Cache),
		ucPet.NewUpdatePet(repos.Pets, repos.Users, deps.Cache, recorder),
		ucPet.NewDeletePet(repos.Pets, deps.Cache, recorder),
		listPetsUC,
	)

	vetHandler := handlers.NewVetHandler(
		ucVet.NewCreateVet(repos.Vets, deps.Hasher, recorder),
		getVetUC,
		ucVet.NewUpdateVet(repos.Vets, deps.Hasher, deps.Cache, recorder),
		ucVet.NewDeleteVet(repos.Vets, deps.Cache, recorder),
		ucAppointment.NewListVetAgenda(repos.Appointments, repos.Vets),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(
			repos.Appointments,
			repos.Users,
			repos.Vets,
			repos.Pets,
			recorder,
		),
		ucAppointment.NewGetAppointment(repos.Appointments),
		ucAppointment.NewScheduleAppointment(repos.Appointments, recorder),
		ucAppointment.NewCompleteAppointment(repos.Appointments, recorder),
		ucAppointment.NewDeleteAppointment(repos.Appointments, recorder),
	)

	authHandler := handlers.NewAuthHandler(
		ucUser.NewLoginUser(repos.Users, deps.Hasher, deps.Issuer),
		ucVet.NewLoginVet(repos.Vets, deps.Hasher, deps.Issuer),
	)
	meHandler := handlers.NewMeHandler(getUserUC, getVetUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.Audit)

	// ======================================================
	// 🩺 OPERAÇÃO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	// ------------------------------
	// USERS
	// ------------------------------
	users := r.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
		users.GET("/:id/pets", userHandler.ListPets)
		users.POST("/:id/appointments", appointmentHandler.Create)
	}

	// ------------------------------
	// PETS
	// ------------------------------
	pets := r.Group("/pets")
	{
		pets.POST("", petHandler.Create)
		pets.GET("", petHandler.List)
		pets.GET("/:id", petHandler.Get)
		pets.PUT("/:id", petHandler.Update)
		pets.DELETE("/:id", petHandler.Delete)
	}

	// ------------------------------
	// VETS
	// ------------------------------
	vets := r.Group("/vets")
	{
		vets.POST("", vetHandler.Create)
		vets.GET("/:id", vetHandler.Get)
		vets.PUT("/:id", vetHandler.Update)
		vets.DELETE("/:id", vetHandler.Delete)
		vets.GET("/:id/appointments", vetHandler.Agenda)
	}

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	appointments := r.Group("/appointments")
	{
		appointments.GET("/:id", appointmentHandler.Get)
		appointments.PUT("/:id/schedule", appointmentHandler.Schedule)
		appointments.PUT("/:id/complete", appointmentHandler.Complete)
		appointments.DELETE("/:id", appointmentHandler.Delete)
	}

	// ------------------------------
	// 🔐 AUTH
	// ------------------------------
	r.POST("/auth/users/login", authHandler.UserLogin)
	r.POST("/auth/vets/login", authHandler.VetLogin)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(deps.Issuer))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
