package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GuilhermeLuzs/dice-play/controllers"
	"github.com/GuilhermeLuzs/dice-play/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ---------------- AUTH ----------------
	api.POST("/register", controllers.Register)
	api.POST("/login", controllers.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", controllers.Logout)
		protected.GET("/me", controllers.Me)

		// ---------------- PERFIS ----------------
		protected.POST("/perfis", controllers.CriarPerfil)
		protected.GET("/perfis", controllers.ListarPerfis)
		protected.GET("/perfis/:id", controllers.DetalhesPerfil)
		protected.PUT("/perfis/:id", controllers.EditarPerfil)
		protected.DELETE("/perfis/:id", controllers.DeletarPerfil)

		protected.GET("/avatares", controllers.ListarAvatares)

		// ---------------- CATÁLOGO ----------------
		protected.GET("/videos", controllers.ListarVideos)
		protected.GET("/videos/:id", controllers.DetalhesVideo)
		protected.GET("/tags", controllers.ListarTags)

		// ---------------- PROGRESSO / FAVORITOS ----------------
		protected.POST("/videos/assistir/:id", controllers.AssistirVideo)
		protected.PUT("/videos/progresso/:id", controllers.AtualizarProgresso)
		protected.POST("/videos/favoritar/:id", controllers.FavoritarVideo)
		protected.GET("/videos/favoritos", controllers.ListarFavoritos)
		protected.GET("/videos/assistindo", controllers.ListarAssistindo)
	}

	// ---------------- ADMIN ----------------
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/videos/adm", controllers.ListarVideosAdm)
		admin.POST("/videos", controllers.AdicionarVideo)
		admin.PUT("/videos/:id", controllers.EditarVideo)
		admin.DELETE("/videos/:id", controllers.ExcluirVideo)
		admin.GET("/videos/youtube-data", controllers.BuscarDadosYoutube)

		admin.GET("/admin/dashboard", controllers.DashboardStats)
		admin.GET("/admin/usuarios", controllers.ListarUsuarios)
	}
}
