package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-ledger/internal/application/checkout"
	"github.com/tu-usuario/pos-ledger/internal/application/inventory"
	"github.com/tu-usuario/pos-ledger/internal/application/security"
	"github.com/tu-usuario/pos-ledger/internal/application/shift"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventorySvc *inventory.Service
	CheckoutUC   *checkout.UseCase
	ShiftUC      *shift.UseCase
	SecurityUC   *security.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público; registro solo admin)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SecurityUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventorySvc)
	invGroup.Post("/receive", inventoryHandler.ReceiveStock)
	invGroup.Post("/deduct", inventoryHandler.DeductStock)
	invGroup.Post("/adjust", inventoryHandler.AdjustStock)
	invGroup.Post("/expire-due", inventoryHandler.ExpireDue)
	invGroup.Post("/products/:id/repair", inventoryHandler.RepairStock)
	invGroup.Get("/products/:id/stock", inventoryHandler.GetStock)
	invGroup.Get("/products/:id/history", inventoryHandler.GetHistory)

	// Checkout (protegido)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	protected.Post("/checkout", checkoutHandler.ProcessCheckout)

	// Turnos (protegido)
	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Post("/open", shiftHandler.OpenShift)
	shifts.Post("/:id/close", shiftHandler.CloseShift)
	shifts.Get("/active", shiftHandler.ActiveShift)
	shifts.Get("/:id/drawer-transactions", shiftHandler.DrawerTransactions)
}
