package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs domain rules on gin's binding engine. Call
// once before building the router.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return models.IsValidRegion(fl.Field().String())
	})
	v.RegisterValidation("bedtype", func(fl validator.FieldLevel) bool {
		return models.IsValidBedType(fl.Field().String())
	})
	v.RegisterValidation("krphone", func(fl validator.FieldLevel) bool {
		return utils.IsValidPhoneNumber(fl.Field().String())
	})
	v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseDate(fl.Field().String())
		return err == nil
	})
}

// BindValidated binds JSON and turns validator failures into the same
// field-keyed error shape the services produce.
func BindValidated[T any](c *gin.Context, dst *T) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := domain.FieldErrors{}
		for _, fe := range verrs {
			fields.Add(fe.Field(), validationMessage(fe))
		}
		RespondDomainError(c, fields)
		return false
	}
	RespondError(c, http.StatusBadRequest, "Invalid request payload")
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "region":
		return "Unknown region"
	case "bedtype":
		return "Unknown bed type"
	case "krphone":
		return "Phone number should be in digits"
	case "dateymd":
		return "Invalid date format. Use 'YYYY-MM-DD'"
	case "min", "gte":
		return "Value is too small"
	case "max", "lte":
		return "Value is too large"
	case "oneof":
		return "Value is not one of the allowed choices"
	default:
		return "This value is invalid"
	}
}
