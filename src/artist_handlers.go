package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"gigbook/src/common"
	"gigbook/src/db"
	"gigbook/src/types"

	"github.com/gin-gonic/gin"
)

func artistHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/artists", func(ctx *gin.Context) {
			queries := common.NewQueries(db.GetDb())
			artists, err := queries.ListArtists()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": artists})
		}).
		POST("/artists/search", func(ctx *gin.Context) {
			var body types.SearchRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			queries := common.NewQueries(db.GetDb())
			results, err := queries.SearchArtists(body.SearchTerm)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"results": results, "search_term": body.SearchTerm})
		}).
		GET("/artists/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			queries := common.NewQueries(db.GetDb())
			artist, err := queries.GetArtistDetail(params.ID)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Artist does not exist"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": artist})
		}).
		POST("/artists", func(ctx *gin.Context) {
			var body types.CreateArtistRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			mutations := common.NewMutations(db.GetDb())
			id, message, err := mutations.CreateArtist(&body)
			if err != nil {
				log.Printf("error creating artist: %s", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("An error occurred. Artist %s could not be listed.", body.Name),
				})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id, "message": message})
		}).
		PUT("/artists/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateArtistRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			mutations := common.NewMutations(db.GetDb())
			if err := mutations.UpdateArtist(params.ID, &body); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Artist does not exist"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		})

	return g
}
