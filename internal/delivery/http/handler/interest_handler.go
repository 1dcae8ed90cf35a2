package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/interest"
)

type InterestHandler struct {
	interestUseCase *interest.InterestUseCase
}

func NewInterestHandler(interestUseCase *interest.InterestUseCase) *InterestHandler {
	return &InterestHandler{
		interestUseCase: interestUseCase,
	}
}

// SendInterest handles POST /interest/send
// @Summary Send interest
// @Description Express interest in another member
// @Tags interest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body interest.SendInterestRequest true "Receiver"
// @Success 200 {object} interest.SendInterestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Router /interest/send [post]
func (h *InterestHandler) SendInterest(c *gin.Context) {
	userID, ok := viewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req interest.SendInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.interestUseCase.SendInterest(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotSendToSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot send interest to yourself"})
		case errors.Is(err, domain.ErrEntitlementRequired):
			// Recoverable: the client offers the upgrade path.
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":   "membership_required",
				"message": "You need a premium subscription to send interests.",
				"upgrade": "/subscription",
			})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send interest"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSentInterests handles GET /interest/sent
// @Summary List sent interest receiver ids
// @Tags interest
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 401 {object} ErrorResponse
// @Router /interest/sent [get]
func (h *InterestHandler) GetSentInterests(c *gin.Context) {
	userID, ok := viewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	ids, err := h.interestUseCase.SentInterestIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list sent interests"})
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"receiver_ids": ids})
}
