package utils

import (
	"encoding/json"
	"fmt"
	"strconv"

	httpError "benerin-admin-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type Result struct {
	Data  interface{}
	Error error
}

type ResponseBody struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(ResponseBody{
		Message: message,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if errObj, ok := err.(*httpError.ErrorObj); ok {
		return ctx.Status(errObj.Code).JSON(errObj)
	}

	errObj := httpError.NewBadRequest()
	errObj.Message = err.Error()
	return ctx.Status(errObj.Code).JSON(errObj)
}

func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%+v", v)
		}
		return string(data)
	}
}

func ConvertInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, _ := strconv.Atoi(val)
		return n
	default:
		return 0
	}
}
