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

func venueHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/venues", func(ctx *gin.Context) {
			queries := common.NewQueries(db.GetDb())
			groups, err := queries.ListVenuesGroupedByLocation()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": groups})
		}).
		POST("/venues/search", func(ctx *gin.Context) {
			var body types.SearchRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			queries := common.NewQueries(db.GetDb())
			results, err := queries.SearchVenues(body.SearchTerm)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"results": results, "search_term": body.SearchTerm})
		}).
		GET("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			queries := common.NewQueries(db.GetDb())
			venue, err := queries.GetVenueDetail(params.ID)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue does not exist"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": venue})
		}).
		POST("/venues", func(ctx *gin.Context) {
			var body types.CreateVenueRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			mutations := common.NewMutations(db.GetDb())
			id, message, err := mutations.CreateVenue(&body)
			if err != nil {
				log.Printf("error creating venue: %s", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("An error occurred. Venue %s could not be listed.", body.Name),
				})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id, "message": message})
		}).
		PUT("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateVenueRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			mutations := common.NewMutations(db.GetDb())
			if err := mutations.UpdateVenue(params.ID, &body); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Venue does not exist"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		DELETE("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			mutations := common.NewMutations(db.GetDb())
			if err := mutations.DeleteVenue(params.ID); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "An error occurred. Venue could not be deleted."})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Venue was successfully deleted!"})
		})

	return g
}
