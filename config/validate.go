package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sagarc03/foodle"
)

// ValidateSettings checks that settings are complete enough to start the
// application. Production settings must carry every secret; other
// variants always pass. The returned error wraps foodle.ErrMissingSecret
// and names each missing setting.
func ValidateSettings(s foodle.Settings) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(settingKeyFromTag)

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate settings: %w", err)
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}

	return fmt.Errorf("validate settings: %w for %s variant: %s",
		foodle.ErrMissingSecret, s.Variant, strings.Join(missing, ", "))
}

func settingKeyFromTag(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
