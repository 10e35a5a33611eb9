package main

import (
	"log"
	"net/http"

	"gigbook/src/common"
	"gigbook/src/db"
	"gigbook/src/types"

	"github.com/gin-gonic/gin"
)

func showHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/shows", func(ctx *gin.Context) {
			queries := common.NewQueries(db.GetDb())
			shows, err := queries.ListShows()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": shows})
		}).
		POST("/shows", func(ctx *gin.Context) {
			var body types.CreateShowRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			mutations := common.NewMutations(db.GetDb())
			id, message, err := mutations.CreateShow(&body)
			if err != nil {
				log.Printf("error creating show: %s", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "An error occurred. Show could not be listed."})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id, "message": message})
		})

	return g
}
