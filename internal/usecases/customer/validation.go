package customer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/shopspring/decimal"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Usa o nome do campo em JSON nas mensagens de erro
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

var requestValidator = newValidator()

// PrepareCreateRequest normaliza o pedido de cadastro e aplica as regras de validação
func PrepareCreateRequest(request *domain.CreateCustomerRequest) error {
	request.Name = strings.TrimSpace(request.Name)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Address = optional(request.Address)
	request.TelegramChatID = optional(request.TelegramChatID)
	if request.Status == "" {
		request.Status = domain.CustomerStatusActive
	}

	problems := structProblems(request)
	problems = append(problems, quantityProblems(request.DailyQuantity)...)
	return validationError("", request.Name, problems)
}

func validateUpdate(request *domain.UpdateCustomerRequest, current *domain.Customer) error {
	problems := structProblems(request)
	if request.DailyQuantity != nil {
		problems = append(problems, quantityProblems(*request.DailyQuantity)...)
	}
	return validationError(current.ID, current.Name, problems)
}

func quantityProblems(quantity decimal.Decimal) []string {
	if !quantity.IsPositive() {
		return []string{"daily_quantity deve ser maior que zero"}
	}
	if !domain.FitsPlaces(quantity, domain.QuantityPlaces) {
		return []string{fmt.Sprintf("daily_quantity aceita no máximo %d casas decimais", domain.QuantityPlaces)}
	}
	return nil
}

func structProblems(request any) []string {
	err := requestValidator.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		problems = append(problems, fieldMessage(fe))
	}
	return problems
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s é obrigatório", fe.Field())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
}

func validationError(id, name string, problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return domain.NewEntityError(domain.ErrValidation, apiErrors.ErrValidation, id, name, strings.Join(problems, "; "))
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

// optional normaliza campos opcionais: texto vazio vira ausência de valor
func optional(value *string) *string {
	v := trimmed(value)
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func profilePayload(c *domain.Customer) domain.CustomerProfilePayload {
	payload := domain.CustomerProfilePayload{
		CustomerName:  c.Name,
		Phone:         c.Phone,
		DailyQuantity: c.DailyQuantity,
		Rate:          c.Rate,
		Status:        c.Status,
	}
	if c.Address != nil {
		payload.Address = *c.Address
	}
	return payload
}
