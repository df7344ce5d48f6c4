package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inventoryhub/parts-service/controllers"
)

// RegisterRoutes registers all inventory routes.
func RegisterRoutes(r *gin.Engine, ctrl *controllers.InventoryController) {
	parts := r.Group("/parts")
	{
		parts.GET("", ctrl.GetParts)
		parts.POST("", ctrl.AddPart)
		parts.GET("/search", ctrl.SearchParts)
		parts.POST("/filter", ctrl.FilterParts)
		parts.POST("/import", ctrl.ImportParts)
		parts.GET("/:id", ctrl.GetPart)
		parts.PUT("/:id", ctrl.UpdatePart)
		parts.DELETE("/:id", ctrl.DeletePart)
		parts.POST("/:id/checkout", ctrl.CheckoutPart)
		parts.POST("/:id/checkin", ctrl.CheckinPart)
		parts.POST("/:id/move", ctrl.MovePart)
		parts.PUT("/:id/quantity", ctrl.SetQuantity)
	}

	shelves := r.Group("/shelves")
	{
		shelves.GET("", ctrl.GetShelves)
		shelves.POST("", ctrl.AddShelf)
		shelves.GET("/summary", ctrl.ShelfCounts)
		shelves.PUT("/:code", ctrl.UpdateShelf)
		shelves.DELETE("/:code", ctrl.DeleteShelf)
		shelves.POST("/:code/rename", ctrl.RenameShelf)
	}

	r.GET("/transactions", ctrl.GetTransactions)
	r.GET("/stats", ctrl.GetStats)
	r.GET("/health", ctrl.Health)
	r.POST("/backup", ctrl.CreateBackup)
	r.POST("/restore", ctrl.RestoreBackup)
}
