package http

import (
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/usecase"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type CategoryController struct {
	Log     log.Log
	UseCase *usecase.CategoryUseCase
}

func NewCategoryController(useCase *usecase.CategoryUseCase, logger log.Log) *CategoryController {
	return &CategoryController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CategoryController) GetList(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context(), ctx.Query("q"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Category List", fiber.StatusOK, ctx)
}

func (c *CategoryController) PostCreate(ctx *fiber.Ctx) error {
	request := new(model.CategoryRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CategoryController.PostCreate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Category Created", fiber.StatusCreated, ctx)
}

func (c *CategoryController) PutUpdate(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.CategoryRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CategoryController.PutUpdate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = id

	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Category Updated", fiber.StatusOK, ctx)
}

func (c *CategoryController) Delete(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.Delete(ctx.Context(), &model.CategoryDeleteRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Category Deleted", fiber.StatusOK, ctx)
}
