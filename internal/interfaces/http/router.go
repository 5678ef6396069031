package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/otopia-pos/internal/application/analytics"
	"github.com/jhoicas/otopia-pos/internal/application/auth"
	"github.com/jhoicas/otopia-pos/internal/application/billing"
	"github.com/jhoicas/otopia-pos/internal/application/inventory"
	"github.com/jhoicas/otopia-pos/internal/application/membership"
	"github.com/jhoicas/otopia-pos/internal/application/notification"
	"github.com/jhoicas/otopia-pos/internal/application/shift"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	OutletUC       *usecase.OutletUseCase
	CatalogUC      *usecase.CatalogUseCase
	PromotionUC    *usecase.PromotionUseCase
	FinanceUC      *usecase.FinanceUseCase
	LandingUC      *usecase.LandingUseCase
	ShiftUC        *shift.UseCase
	CustomerUC     *billing.CustomerUseCase
	TransactionUC  *billing.TransactionUseCase
	MembershipUC   *membership.UseCase
	InventoryUC    *inventory.UseCase
	DashboardUC    *appanalytics.DashboardUseCase
	NotificationUC *notification.UseCase
	// Metrics expone /metrics; nil lo omite.
	Metrics   nethttp.Handler
	JWTSecret string
}

// Router registra las rutas de la API. Las rutas públicas van primero: el grupo
// protegido instala su middleware sobre todo /api.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authHandler := NewAuthHandler(deps.AuthUC)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.MembershipUC)
	financeHandler := NewFinanceHandler(deps.FinanceUC, deps.LandingUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Sitio público
	public := api.Group("/public")
	public.Get("/services", catalogHandler.ListServices)
	public.Post("/check-membership", customerHandler.CheckMembership)
	public.Get("/landing-config", financeHandler.GetLanding)

	// Rutas protegidas (requieren Bearer Token y usuario activo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), LoadUser(deps.UserUC))
	manage := RequireRole(entity.RoleOwner, entity.RoleManager)
	ownerOnly := RequireRole(entity.RoleOwner)

	protected.Get("/auth/me", authHandler.Me)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/staff", userHandler.ListStaff)
	users.Get("/", manage, userHandler.List)
	users.Put("/:id", manage, userHandler.Update)
	users.Post("/:id/reset-password", manage, userHandler.ResetPassword)
	users.Delete("/:id", ownerOnly, userHandler.Delete)

	// Sucursales
	outletHandler := NewOutletHandler(deps.OutletUC)
	outlets := protected.Group("/outlets")
	outlets.Get("/", outletHandler.List)
	outlets.Get("/:id", outletHandler.GetByID)
	outlets.Post("/", manage, outletHandler.Create)
	outlets.Put("/:id", manage, outletHandler.Update)
	outlets.Delete("/:id", ownerOnly, outletHandler.Delete)

	// Turnos
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts := protected.Group("/shifts")
	shifts.Post("/open", shiftHandler.Open)
	shifts.Get("/", shiftHandler.List)
	shifts.Get("/current/:kasir_id", shiftHandler.Current)
	shifts.Post("/:id/cash-movements", shiftHandler.AddCashMovement)
	shifts.Post("/:id/close", shiftHandler.Close)
	shifts.Get("/:id/summary", shiftHandler.Summary)
	shifts.Get("/:id/details", shiftHandler.Details)
	shifts.Get("/:id/export", shiftHandler.Export)

	// Clientes
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", manage, customerHandler.Delete)
	customers.Get("/:id/transactions", customerHandler.Transactions)

	// Membresías
	memberships := protected.Group("/memberships")
	memberships.Post("/use", customerHandler.UseMembership)
	memberships.Post("/", manage, customerHandler.CreateMembership)
	memberships.Get("/", customerHandler.ListMemberships)
	memberships.Get("/:id", customerHandler.GetMembership)
	memberships.Post("/:id/extend", manage, customerHandler.ExtendMembership)
	memberships.Delete("/:id", manage, customerHandler.DeleteMembership)

	// Servicios y productos
	services := protected.Group("/services")
	services.Get("/", catalogHandler.ListServices)
	services.Get("/:id", catalogHandler.GetService)
	services.Post("/", manage, catalogHandler.CreateService)
	services.Put("/:id", manage, catalogHandler.UpdateService)
	services.Delete("/:id", manage, catalogHandler.DeleteService)

	products := protected.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Post("/", manage, catalogHandler.CreateProduct)
	products.Put("/:id", manage, catalogHandler.UpdateProduct)
	products.Delete("/:id", manage, catalogHandler.DeleteProduct)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory")
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/:id", inventoryHandler.Get)
	inv.Get("/:id/logs", inventoryHandler.Logs)
	inv.Post("/", manage, inventoryHandler.Create)
	inv.Put("/:id", manage, inventoryHandler.Update)
	inv.Delete("/:id", manage, inventoryHandler.Delete)
	inv.Post("/:id/adjust", manage, inventoryHandler.Adjust)

	// Ventas
	txHandler := NewTransactionHandler(deps.TransactionUC)
	txs := protected.Group("/transactions")
	txs.Post("/", txHandler.Create)
	txs.Get("/", txHandler.List)
	txs.Get("/today", txHandler.Today)
	txs.Get("/export", manage, txHandler.Export)
	txs.Get("/:id", txHandler.Detail)
	txs.Get("/:id/receipt.pdf", txHandler.Receipt)

	// Tablero
	protected.Get("/dashboard/stats", NewDashboardHandler(deps.DashboardUC).GetStats)

	// Promociones
	promoHandler := NewPromotionHandler(deps.PromotionUC)
	promos := protected.Group("/promotions")
	promos.Post("/validate", promoHandler.Validate)
	promos.Post("/redeem", promoHandler.Redeem)
	promos.Get("/", promoHandler.List)
	promos.Get("/:id", promoHandler.Get)
	promos.Post("/", manage, promoHandler.Create)
	promos.Put("/:id", manage, promoHandler.Update)
	promos.Delete("/:id", manage, promoHandler.Delete)

	// Notificaciones
	notifHandler := NewNotificationHandler(deps.NotificationUC)
	protected.Post("/notifications/send-receipt", notifHandler.SendReceipt)
	protected.Post("/notifications/check-expiring", manage, notifHandler.CheckExpiring)
	protected.Get("/whatsapp/status", manage, notifHandler.Status)
	protected.Post("/whatsapp/send-test", manage, notifHandler.SendTest)

	// Finanzas
	protected.Get("/expenses", manage, financeHandler.ListExpenses)
	protected.Post("/expenses", manage, financeHandler.CreateExpense)
	protected.Delete("/expenses/:id", ownerOnly, financeHandler.DeleteExpense)
	protected.Get("/payouts", manage, financeHandler.ListPayouts)
	protected.Post("/payouts", manage, financeHandler.CreatePayout)
	protected.Put("/landing-config", manage, financeHandler.SaveLanding)
}
