package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construdata/pedidos-api/internal/application/auth"
	"github.com/construdata/pedidos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	PedidoUC   *usecase.PedidoUseCase
	PedidoPDF  *usecase.PedidoPDFUseCase
	CatalogoUC *usecase.CatalogoUseCase
	EnvioUC    *usecase.EnvioUseCase
	CodigoUC   *usecase.CodigoUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.PedidoPDF)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	envioHandler := NewEnvioHandler(deps.EnvioUC)
	codigoHandler := NewCodigoHandler(deps.CodigoUC)

	// Auth (público)
	app.Post("/registrar_cliente", authHandler.RegistrarCliente)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pedidos
	protected.Get("/pedidos", pedidoHandler.Listar)
	protected.Get("/pedidos/:codigo_pedido/pdf", pedidoHandler.HojaPedido)
	protected.Post("/registrar_pedido", pedidoHandler.Registrar)
	protected.Put("/actualizar_pedido/:codigo_pedido", pedidoHandler.Actualizar)

	// Catálogos
	protected.Get("/proyecto", catalogoHandler.ListarProyectos)
	protected.Get("/usuario", catalogoHandler.ListarUsuarios)
	protected.Get("/transporte", catalogoHandler.ListarTransportes)
	protected.Get("/oficina_tecnica", catalogoHandler.ListarOficinas)
	protected.Get("/producto", catalogoHandler.ListarProductos)
	protected.Get("/personas", catalogoHandler.ListarPersonas)
	protected.Post("/registrar_proyecto", catalogoHandler.RegistrarProyecto)
	protected.Post("/registrar_producto", catalogoHandler.RegistrarProducto)
	protected.Post("/registrar_transporte", catalogoHandler.RegistrarTransporte)
	protected.Post("/registrar_oficina", catalogoHandler.RegistrarOficina)
	protected.Post("/registrar_persona", catalogoHandler.RegistrarPersona)

	// Envíos
	protected.Post("/registrar_envio", envioHandler.Registrar)
	protected.Get("/envios", envioHandler.Listar)

	// Códigos de verificación
	protected.Post("/codigo", codigoHandler.Emitir)
	protected.Post("/verificar_codigo", codigoHandler.Verificar)
}
