package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	shelterdto "fanimal/internal/application/shelter/dto"
	"fanimal/internal/application/shelter/usecases"
	"fanimal/internal/shared/logger"
	"fanimal/internal/shared/utils"
)

type ShelterHandler struct {
	createUseCase          createShelterUseCase
	listUseCase            listSheltersUseCase
	getUseCase             getShelterUseCase
	updateUseCase          updateShelterUseCase
	deleteUseCase          deleteShelterUseCase
	configurePricesUseCase configurePricesUseCase
	logger                 logger.Interface
}

func NewShelterHandler(
	createUC createShelterUseCase,
	listUC listSheltersUseCase,
	getUC getShelterUseCase,
	updateUC updateShelterUseCase,
	deleteUC deleteShelterUseCase,
	configurePricesUC configurePricesUseCase,
	logger logger.Interface,
) *ShelterHandler {
	return &ShelterHandler{
		createUseCase:          createUC,
		listUseCase:            listUC,
		getUseCase:             getUC,
		updateUseCase:          updateUC,
		deleteUseCase:          deleteUC,
		configurePricesUseCase: configurePricesUC,
		logger:                 logger,
	}
}

type CreateShelterRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
}

type UpdateShelterRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
}

type ConfigurePricesRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	PriceBasic    string `json:"price_basic" binding:"required"`
	PriceStandard string `json:"price_standard" binding:"required"`
	PricePremium  string `json:"price_premium" binding:"required"`
}

func (h *ShelterHandler) Create(c *gin.Context) {
	var req CreateShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := actorFromContext(c)

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateShelterCommand{
		ActorID:     actorID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, shelterdto.FromShelter(result.Shelter))
}

func (h *ShelterHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, shelterdto.FromShelters(result.Shelters))
}

func (h *ShelterHandler) Get(c *gin.Context) {
	shelterID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid shelter id")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetShelterCommand{ShelterID: shelterID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, shelterdto.FromShelterWithHTML(result.Shelter, result.DescriptionHTML))
}

func (h *ShelterHandler) Update(c *gin.Context) {
	shelterID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid shelter id")
		return
	}

	var req UpdateShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, actorRole := actorFromContext(c)

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateShelterCommand{
		ShelterID:   shelterID,
		ActorID:     actorID,
		ActorRole:   actorRole,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, shelterdto.FromShelter(result.Shelter))
}

func (h *ShelterHandler) Delete(c *gin.Context) {
	shelterID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid shelter id")
		return
	}

	actorID, actorRole := actorFromContext(c)

	err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteShelterCommand{
		ShelterID: shelterID,
		ActorID:   actorID,
		ActorRole: actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ShelterHandler) ConfigurePrices(c *gin.Context) {
	shelterID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid shelter id")
		return
	}

	var req ConfigurePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, actorRole := actorFromContext(c)

	result, err := h.configurePricesUseCase.Execute(c.Request.Context(), usecases.ConfigurePricesCommand{
		ShelterID:     shelterID,
		ActorID:       actorID,
		ActorRole:     actorRole,
		ProductID:     req.ProductID,
		PriceBasic:    req.PriceBasic,
		PriceStandard: req.PriceStandard,
		PricePremium:  req.PricePremium,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, shelterdto.FromShelter(result.Shelter))
}
