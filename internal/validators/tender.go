package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-tender-search/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of tender
// fields. They are the JSON names of the fields.
const (
	// FieldID targets the tender identifier.
	FieldID = "id"

	// FieldTitle targets the tender title.
	FieldTitle = "title"

	// FieldDescription targets the tender description.
	FieldDescription = "description"
)

// tenderStructFields maps JSON field names onto the Go field names expected by
// validator.StructPartial.
var tenderStructFields = map[string]string{
	FieldID:          "ID",
	FieldTitle:       "Title",
	FieldDescription: "Description",
}

// TenderValidator implements the Validator interface for search results
// returned by the remote function. Rules are declared as `validate` struct
// tags on models.TenderRecord and evaluated by go-playground/validator. A
// member is required to be present and non-null; an empty string passes.
type TenderValidator struct {
	validate *validator.Validate
}

// NewTenderValidator constructs a new TenderValidator and returns it as the
// Validator interface.
func NewTenderValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &TenderValidator{validate: validate}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.TenderRecord / *models.TenderRecord
//   - []models.TenderRecord
//
// A slice is rejected at its first invalid record; the error names the
// record index and the JSON field. Optional fields restrict validation to the
// named subset; when omitted every field is validated.
func (v *TenderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	structFields, err := v.structFields(fields)
	if err != nil {
		return err
	}

	switch value := obj.(type) {
	case models.TenderRecord:
		return v.validateRecord(ctx, value, structFields)
	case *models.TenderRecord:
		if value == nil {
			return ErrNilTender
		}
		return v.validateRecord(ctx, *value, structFields)

	case []models.TenderRecord:
		for i, record := range value {
			if err = v.validateRecord(ctx, record, structFields); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *TenderValidator) structFields(fields []string) ([]string, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	structFields := make([]string, 0, len(fields))
	for _, f := range fields {
		name, ok := tenderStructFields[f]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		structFields = append(structFields, name)
	}
	return structFields, nil
}

func (v *TenderValidator) validateRecord(ctx context.Context, record models.TenderRecord, structFields []string) error {
	var err error
	if len(structFields) == 0 {
		err = v.validate.StructCtx(ctx, record)
	} else {
		err = v.validate.StructPartialCtx(ctx, record, structFields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTender, err)
	}

	return fmt.Errorf("%w: %s", ErrInvalidTender, describe(validationErrors[0]))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %q is required", fe.Field())
	default:
		return fmt.Sprintf("field %q failed %q validation", fe.Field(), fe.Tag())
	}
}

// jsonFieldName reports fields by their JSON name so that messages match the
// payload the remote function sent.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
