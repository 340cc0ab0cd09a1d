package validator

import (
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры; ошибки валидации конвертируются
// в AppError с деталями по полям
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]interface{}, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		return errors.ErrInvalidRequest.WithDetails(details)
	}

	return errors.ErrInvalidRequest
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
