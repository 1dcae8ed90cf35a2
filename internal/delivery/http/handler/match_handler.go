package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// MatchQuery binds the session filter state from query parameters.
// Criteria arrive wholesale on every request; nothing is kept between
// calls.
type MatchQuery struct {
	Tab    string `form:"tab,default=all" binding:"omitempty,oneof=all new nearby preferred"`
	Sort   string `form:"sort,default=compatibility" binding:"omitempty,oneof=compatibility newest recently_active age_low age_high"`
	Query  string `form:"q"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Gender string `form:"gender,default=All" binding:"omitempty,oneof=All Male Female"`
	AgeMin *int   `form:"age_min" binding:"omitempty,min=18,max=100"`
	AgeMax *int   `form:"age_max" binding:"omitempty,min=18,max=100"`

	Location       string   `form:"location"`
	MaritalStatus  []string `form:"marital_status" binding:"omitempty,dive,oneof=Unmarried Divorced Widowed Separated"`
	Caste          string   `form:"caste"`
	SubCaste       string   `form:"sub_caste"`
	Education      string   `form:"education"`
	Occupation     string   `form:"occupation"`
	Diet           string   `form:"diet,default=Any" binding:"omitempty,oneof=Any Veg Non-Veg"`
	WithPhoto      bool     `form:"with_photo"`
	ActiveRecently bool     `form:"active_recently"`
}

// BrowseMatches handles GET /matches
// @Summary Browse ranked matches
// @Description Enriched, scored, filtered and sorted candidates plus tab counts
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} match.BrowseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} IncompleteProfileResponse
// @Router /matches [get]
func (h *MatchHandler) BrowseMatches(c *gin.Context) {
	userID, ok := viewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var q MatchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}

	req := &match.BrowseRequest{
		Tab:      domain.Tab(q.Tab),
		Sort:     domain.SortKey(q.Sort),
		Query:    q.Query,
		Page:     q.Page,
		Limit:    q.Limit,
		Criteria: q.toCriteria(),
	}

	resp, err := h.matchUseCase.Browse(c.Request.Context(), userID, req)
	if err != nil {
		var incomplete *domain.IncompleteProfileError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusForbidden, IncompleteProfileResponse{
				Error:         "incomplete_profile",
				MissingFields: incomplete.Missing,
			})
			return
		}
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to browse matches"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTabCounts handles GET /matches/tabs
// @Summary Tab counts
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.TabCounts
// @Failure 401 {object} ErrorResponse
// @Router /matches/tabs [get]
func (h *MatchHandler) GetTabCounts(c *gin.Context) {
	userID, ok := viewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	counts, err := h.matchUseCase.TabCounts(c.Request.Context(), userID)
	if err != nil {
		var incomplete *domain.IncompleteProfileError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusForbidden, IncompleteProfileResponse{
				Error:         "incomplete_profile",
				MissingFields: incomplete.Missing,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to count tabs"})
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (q *MatchQuery) toCriteria() domain.FilterCriteria {
	criteria := domain.DefaultFilterCriteria()
	criteria.Gender = q.Gender
	if q.AgeMin != nil {
		criteria.AgeMin = q.AgeMin
	}
	if q.AgeMax != nil {
		criteria.AgeMax = q.AgeMax
	}
	criteria.Location = q.Location
	criteria.MaritalStatus = q.MaritalStatus
	criteria.Caste = q.Caste
	criteria.SubCaste = q.SubCaste
	criteria.Education = q.Education
	criteria.Occupation = q.Occupation
	criteria.Diet = q.Diet
	criteria.WithPhoto = q.WithPhoto
	criteria.ActiveRecently = q.ActiveRecently
	return criteria
}
