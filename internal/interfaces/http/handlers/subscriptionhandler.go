package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	shelterdto "fanimal/internal/application/shelter/dto"
	subscriptiondto "fanimal/internal/application/subscription/dto"
	"fanimal/internal/application/subscription/usecases"
	userdto "fanimal/internal/application/user/dto"
	"fanimal/internal/shared/logger"
	"fanimal/internal/shared/utils"
)

type SubscriptionHandler struct {
	subscribeUseCase   subscribeUseCase
	listUseCase        listSubscriptionsUseCase
	unsubscribeUseCase unsubscribeUseCase
	logger             logger.Interface
}

func NewSubscriptionHandler(
	subscribeUC subscribeUseCase,
	listUC listSubscriptionsUseCase,
	unsubscribeUC unsubscribeUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscribeUseCase:   subscribeUC,
		listUseCase:        listUC,
		unsubscribeUseCase: unsubscribeUC,
		logger:             logger,
	}
}

type SubscribeRequest struct {
	ShelterID       uint   `json:"shelter_id" binding:"required"`
	Tier            string `json:"tier" binding:"required"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

type SubscribeResponse struct {
	Subscription *subscriptiondto.SubscriptionDTO `json:"subscription"`
	User         *userdto.UserDTO                 `json:"user"`
	Shelter      *shelterdto.ShelterDTO           `json:"shelter"`
	// ClientSecret is used by the client to confirm the first payment.
	ClientSecret string `json:"client_secret,omitempty"`
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := actorFromContext(c)

	result, err := h.subscribeUseCase.Execute(c.Request.Context(), usecases.SubscribeCommand{
		UserID:          actorID,
		ShelterID:       req.ShelterID,
		Tier:            req.Tier,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, SubscribeResponse{
		Subscription: subscriptiondto.FromSubscription(result.Subscription),
		User:         userdto.FromUser(result.User),
		Shelter:      shelterdto.FromShelter(result.Shelter),
		ClientSecret: result.ClientSecret,
	}, "subscription created")
}

func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	actorID, _ := actorFromContext(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListSubscriptionsCommand{UserID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, subscriptiondto.FromSubscriptions(result.Subscriptions))
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription id")
		return
	}

	actorID, actorRole := actorFromContext(c)

	err := h.unsubscribeUseCase.Execute(c.Request.Context(), usecases.UnsubscribeCommand{
		SubscriptionID: subscriptionID,
		ActorID:        actorID,
		ActorRole:      actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
