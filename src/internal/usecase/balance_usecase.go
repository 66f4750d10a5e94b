package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/model/converter"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const (
	balanceRollupPageSize = 20
	balanceDetailPageSize = 50
)

type BalanceUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	UserRepository    *repository.UserRepository
	BalanceRepository *repository.BalanceRepository
}

func NewBalanceUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository *repository.UserRepository,
	balanceRepository *repository.BalanceRepository,
) *BalanceUseCase {
	return &BalanceUseCase{
		Log:               logger,
		Validate:          validate,
		UserRepository:    userRepository,
		BalanceRepository: balanceRepository,
	}
}

// Rollup lists every user/teknisi account with its aggregated ledger totals.
// Accounts without a single ledger row are part of the result: the entry
// filters narrow which rows are summed, never which accounts appear.
func (c *BalanceUseCase) Rollup(ctx context.Context, request *model.BalanceListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("balance-usecase", errObj.Message, "Rollup", utils.ConvertString(request))
		return result
	}

	parser := newFilterParser()
	filter := entity.BalanceRollupFilter{
		Search:    request.Q,
		OwnerRole: request.OwnerRole,
		Entry: entity.LedgerEntryFilter{
			Type:     request.Type,
			DateFrom: parser.Date("date_from", request.DateFrom),
			DateTo:   parser.DateEnd("date_to", request.DateTo),
			OwnerID:  parser.Uint("owner_id", request.OwnerID),
			RefTable: request.RefTable,
			RefID:    parser.Uint("ref_id", request.RefID),
		},
		Having: entity.BalanceHavingFilter{
			AmountMin: parser.Decimal("amount_min", request.AmountMin),
			AmountMax: parser.Decimal("amount_max", request.AmountMax),
		},
	}
	if fields := parser.Err(); fields != nil {
		result.Error = httpError.NewUnprocessableEntity(fields)
		c.Log.Error("balance-usecase", "invalid filter values", "Rollup", utils.ConvertString(fields))
		return result
	}

	page, size := utils.NormalizePage(request.Page, request.Size, balanceRollupPageSize)
	rows, err := c.BalanceRepository.Rollup(ctx, filter, size, utils.Offset(page, size))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to aggregate balances"
		result.Error = errObj
		c.Log.Error("balance-usecase", fmt.Sprintf("Rollup query failed: %v", err), "Rollup", "")
		return result
	}

	count, err := c.BalanceRepository.RollupCount(ctx, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to count balance rollup"
		result.Error = errObj
		c.Log.Error("balance-usecase", fmt.Sprintf("Rollup count failed: %v", err), "Rollup", "")
		return result
	}

	items := make([]model.BalanceRollupResponse, 0, len(rows))
	for i := range rows {
		items = append(items, converter.BalanceRollupToResponse(&rows[i]))
	}

	result.Data = model.BalanceListResponse{
		Items:      items,
		Totals:     converter.BalancePageTotals(rows),
		Filters:    *request,
		Pagination: utils.NewPagination(page, size, count),
	}
	return result
}

// Detail returns one account's profile with its full ledger history, oldest
// entry first.
func (c *BalanceUseCase) Detail(ctx context.Context, request *model.BalanceDetailRequest) utils.Result {
	var result utils.Result

	// The role path segment is an explicit allow-list: anything outside it
	// is a missing resource, not a malformed request.
	if request.OwnerRole != entity.RoleUser && request.OwnerRole != entity.RoleTeknisi {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("unknown account role %q", request.OwnerRole)
		result.Error = errObj
		c.Log.Error("balance-usecase", errObj.Message, "Detail", "")
		return result
	}

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("balance-usecase", errObj.Message, "Detail", utils.ConvertString(request))
		return result
	}

	owner, err := c.UserRepository.FindByRoleAndID(ctx, request.OwnerRole, request.OwnerID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("account %s/%d not found", request.OwnerRole, request.OwnerID)
		result.Error = errObj
		c.Log.Error("balance-usecase", errObj.Message, "Detail", utils.ConvertString(err))
		return result
	}

	parser := newFilterParser()
	filter := entity.LedgerDetailFilter{
		Search: request.Q,
		Entry: entity.LedgerEntryFilter{
			Type:     request.Type,
			DateFrom: parser.Date("date_from", request.DateFrom),
			DateTo:   parser.DateEnd("date_to", request.DateTo),
			RefTable: request.RefTable,
			RefID:    parser.Uint("ref_id", request.RefID),
		},
	}
	if fields := parser.Err(); fields != nil {
		result.Error = httpError.NewUnprocessableEntity(fields)
		c.Log.Error("balance-usecase", "invalid filter values", "Detail", utils.ConvertString(fields))
		return result
	}

	page, size := utils.NormalizePage(request.Page, request.Size, balanceDetailPageSize)
	entries, err := c.BalanceRepository.EntriesByOwner(ctx, owner.Role, owner.ID, filter, size, utils.Offset(page, size))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to load ledger entries"
		result.Error = errObj
		c.Log.Error("balance-usecase", fmt.Sprintf("EntriesByOwner failed: %v", err), "Detail", "")
		return result
	}

	count, err := c.BalanceRepository.EntriesByOwnerCount(ctx, owner.Role, owner.ID, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to count ledger entries"
		result.Error = errObj
		c.Log.Error("balance-usecase", fmt.Sprintf("EntriesByOwnerCount failed: %v", err), "Detail", "")
		return result
	}

	if entries == nil {
		entries = []entity.LedgerEntry{}
	}

	result.Data = model.BalanceDetailResponse{
		Owner:      converter.UserToBalanceOwner(owner),
		Entries:    entries,
		Filters:    *request,
		Pagination: utils.NewPagination(page, size, count),
	}
	return result
}
