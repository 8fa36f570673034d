package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	userdto "fanimal/internal/application/user/dto"
	"fanimal/internal/application/user/usecases"
	"fanimal/internal/shared/logger"
	"fanimal/internal/shared/utils"
)

type getUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetUserCommand) (*usecases.GetUserResult, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*usecases.UpdateProfileResult, error)
}

type UserHandler struct {
	getUserUseCase       getUserUseCase
	updateProfileUseCase updateProfileUseCase
	logger               logger.Interface
}

func NewUserHandler(
	getUserUC getUserUseCase,
	updateProfileUC updateProfileUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUserUseCase:       getUserUC,
		updateProfileUseCase: updateProfileUC,
		logger:               logger,
	}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// GetCurrentUser returns the authenticated user's profile.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actorID, _ := actorFromContext(c)

	result, err := h.getUserUseCase.Execute(c.Request.Context(), usecases.GetUserCommand{UserID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, userdto.FromUser(result.User))
}

// UpdateProfile updates the authenticated user's display name.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := actorFromContext(c)

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID: actorID,
		Name:   req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, userdto.FromUser(result.User))
}
