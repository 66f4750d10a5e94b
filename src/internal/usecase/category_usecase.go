package usecase

import (
	"context"
	"fmt"
	"strings"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type CategoryUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	CategoryRepository *repository.CategoryRepository
}

func NewCategoryUseCase(
	logger log.Log,
	validate *validator.Validate,
	categoryRepository *repository.CategoryRepository,
) *CategoryUseCase {
	return &CategoryUseCase{
		Log:                logger,
		Validate:           validate,
		CategoryRepository: categoryRepository,
	}
}

// MakeSlug normalizes a name into a URL slug: lowercase, whitespace runs
// become single hyphens, anything outside [a-z0-9-] is dropped. Applying it
// to its own output changes nothing.
func MakeSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

func slugTakenError() *httpError.ErrorObj {
	return httpError.NewUnprocessableEntity(map[string]string{
		"slug": "slug is already in use",
	})
}

func (c *CategoryUseCase) List(ctx context.Context, search string) utils.Result {
	var result utils.Result

	categories, err := c.CategoryRepository.List(ctx, search)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to list categories"
		result.Error = errObj
		c.Log.Error("category-usecase", fmt.Sprintf("List failed: %v", err), "List", "")
		return result
	}
	if categories == nil {
		categories = []entity.Category{}
	}

	result.Data = categories
	return result
}

func (c *CategoryUseCase) Create(ctx context.Context, request *model.CategoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	slug := request.Slug
	if slug == "" {
		slug = request.Name
	}
	slug = MakeSlug(slug)
	if slug == "" {
		result.Error = httpError.NewUnprocessableEntity(map[string]string{
			"slug": "slug must contain at least one letter or digit",
		})
		return result
	}

	// Pre-check for a friendly error; the unique index is still the real
	// guard against a concurrent insert.
	taken, err := c.CategoryRepository.SlugExists(ctx, slug, 0)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to check slug"
		result.Error = errObj
		c.Log.Error("category-usecase", fmt.Sprintf("SlugExists failed: %v", err), "Create", "")
		return result
	}
	if taken {
		result.Error = slugTakenError()
		return result
	}

	category := &entity.Category{
		Name: request.Name,
		Slug: slug,
	}
	if request.Icon != "" {
		category.Icon = &request.Icon
	}

	if err := c.CategoryRepository.Create(ctx, category); err != nil {
		if repository.IsDuplicateKey(err) {
			result.Error = slugTakenError()
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to create category"
		result.Error = errObj
		c.Log.Error("category-usecase", fmt.Sprintf("Create failed: %v", err), "Create", "")
		return result
	}

	result.Data = category
	return result
}

func (c *CategoryUseCase) Update(ctx context.Context, request *model.CategoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Update", utils.ConvertString(request))
		return result
	}

	category, err := c.CategoryRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("category %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	slug := request.Slug
	if slug == "" {
		slug = request.Name
	}
	slug = MakeSlug(slug)
	if slug == "" {
		result.Error = httpError.NewUnprocessableEntity(map[string]string{
			"slug": "slug must contain at least one letter or digit",
		})
		return result
	}

	taken, err := c.CategoryRepository.SlugExists(ctx, slug, category.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to check slug"
		result.Error = errObj
		c.Log.Error("category-usecase", fmt.Sprintf("SlugExists failed: %v", err), "Update", "")
		return result
	}
	if taken {
		result.Error = slugTakenError()
		return result
	}

	category.Name = request.Name
	category.Slug = slug
	if request.Icon != "" {
		category.Icon = &request.Icon
	}

	if err := c.CategoryRepository.Update(ctx, category); err != nil {
		if repository.IsDuplicateKey(err) {
			result.Error = slugTakenError()
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to update category"
		result.Error = errObj
		c.Log.Error("category-usecase", fmt.Sprintf("Update failed: %v", err), "Update", "")
		return result
	}

	result.Data = category
	return result
}

func (c *CategoryUseCase) Delete(ctx context.Context, request *model.CategoryDeleteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("category-usecase", errObj.Message, "Delete", utils.ConvertString(request))
		return result
	}

	ok, err := c.CategoryRepository.Delete(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to delete category"
		result.Error = errObj
		c.Log.Error("category-usecase", fmt.Sprintf("Delete failed: %v", err), "Delete", "")
		return result
	}
	if !ok {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("category %d not found", request.ID)
		result.Error = errObj
		return result
	}

	result.Data = map[string]interface{}{"deleted": true}
	return result
}
