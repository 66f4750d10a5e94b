package http

import (
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/usecase"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Log     log.Log
	UseCase *usecase.UserUseCase
}

func NewUserController(useCase *usecase.UserUseCase, logger log.Log) *UserController {
	return &UserController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *UserController) GetList(ctx *fiber.Ctx) error {
	request := &model.UserListRequest{
		Q:    ctx.Query("q"),
		Role: ctx.Query("role"),
		Page: ctx.QueryInt("page", 1),
		Size: ctx.QueryInt("size"),
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User List", fiber.StatusOK, ctx)
}

func (c *UserController) GetDetail(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.Get(ctx.Context(), &model.GetUserRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Detail", fiber.StatusOK, ctx)
}

func (c *UserController) PostCreate(ctx *fiber.Ctx) error {
	request := new(model.CreateUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.PostCreate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Created", fiber.StatusCreated, ctx)
}

func (c *UserController) PutUpdate(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.UpdateUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.PutUpdate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = id

	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Updated", fiber.StatusOK, ctx)
}

func (c *UserController) Delete(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.Delete(ctx.Context(), &model.DeleteUserRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Deleted", fiber.StatusOK, ctx)
}
