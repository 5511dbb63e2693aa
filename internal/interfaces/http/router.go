package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcondori/kardex-api/internal/application/auth"
	"github.com/jcondori/kardex-api/internal/application/inventario"
	"github.com/jcondori/kardex-api/internal/application/transferencia"
	"github.com/jcondori/kardex-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistrarMovimiento *inventario.RegistrarMovimientoUseCase
	ConsultaStock       *inventario.ConsultaStockUseCase
	Transferencias      *transferencia.TransferenciaUseCase
	ProductoUC          *usecase.ProductoUseCase
	AlmacenUC           *usecase.AlmacenUseCase
	AuthUC              *auth.AuthUseCase
	JWTSecret           string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Movimientos y stock
	inventarioHandler := NewInventarioHandler(deps.RegistrarMovimiento, deps.ConsultaStock)
	protected.Post("/movimientos", inventarioHandler.RegistrarMovimiento)
	protected.Get("/movimientos", inventarioHandler.Kardex)
	protected.Get("/stock", inventarioHandler.Stock)

	// Transferencias
	transferencias := protected.Group("/transferencias")
	transferenciaHandler := NewTransferenciaHandler(deps.Transferencias)
	transferencias.Post("/", transferenciaHandler.Crear)
	transferencias.Get("/", transferenciaHandler.List)
	transferencias.Get("/:id", transferenciaHandler.GetByID)
	transferencias.Post("/:id/enviar", transferenciaHandler.Enviar)
	transferencias.Post("/:id/recibir", transferenciaHandler.Recibir)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)

	// Almacenes
	almacenes := protected.Group("/almacenes")
	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacenes.Post("/", almacenHandler.Create)
	almacenes.Get("/", almacenHandler.List)
	almacenes.Get("/:codigo", almacenHandler.GetByCodigo)
}
