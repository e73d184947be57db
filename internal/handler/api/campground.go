package api

import (
	"errors"
	"net/http"

	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampgroundHandler struct {
	campgroundQueries queries.CampgroundQueries
}

func NewCampgroundHandler(campgroundQueries queries.CampgroundQueries) *CampgroundHandler {
	return &CampgroundHandler{
		campgroundQueries: campgroundQueries,
	}
}

// @Summary List campgrounds
// @Description List all campgrounds ordered by title
// @Tags campgrounds
// @Produce json
// @Success 200 {array} resdto.CampgroundResponse
// @Router /campgrounds [get]
func (h *CampgroundHandler) ListCampgrounds(c *gin.Context) {
	views, err := h.campgroundQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list campgrounds", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampgroundViews(views))
}

// @Summary Get campground
// @Description Get campground by ID
// @Tags campgrounds
// @Produce json
// @Param id path string true "Campground ID"
// @Success 200 {object} resdto.CampgroundResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /campgrounds/{id} [get]
func (h *CampgroundHandler) GetCampground(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campground ID format", nil)
		return
	}

	view, err := h.campgroundQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCampgroundNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Campground not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load campground", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampgroundView(view))
}
