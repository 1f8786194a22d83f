package console

import (
	"context"

	"github.com/hrms-lite/hrms-go/internal/client"
	"github.com/hrms-lite/hrms-go/internal/console/notify"
	"github.com/hrms-lite/hrms-go/internal/pkg/validator"
)

type Field string

const (
	FieldEmployeeID Field = "employee_id"
	FieldFullName   Field = "full_name"
	FieldEmail      Field = "email"
	FieldDepartment Field = "department"
)

// EmployeeForm collects and validates a new employee before posting it.
type EmployeeForm struct {
	api       API
	notifier  notify.Notifier
	onSuccess func(ctx context.Context)

	values  client.EmployeeInput
	errors  map[Field]string
	loading bool
}

// NewEmployeeForm creates a form. onSuccess runs after a successful create
// and may be nil.
func NewEmployeeForm(api API, n notify.Notifier, onSuccess func(ctx context.Context)) *EmployeeForm {
	return &EmployeeForm{
		api:       api,
		notifier:  n,
		onSuccess: onSuccess,
		errors:    map[Field]string{},
	}
}

// Set updates a field and clears its error.
func (f *EmployeeForm) Set(field Field, value string) {
	switch field {
	case FieldEmployeeID:
		f.values.EmployeeID = value
	case FieldFullName:
		f.values.FullName = value
	case FieldEmail:
		f.values.Email = value
	case FieldDepartment:
		f.values.Department = value
	default:
		return
	}
	delete(f.errors, field)
}

func (f *EmployeeForm) Values() client.EmployeeInput { return f.values }

func (f *EmployeeForm) Loading() bool { return f.loading }

// FieldError returns the current error for field, or "".
func (f *EmployeeForm) FieldError(field Field) string { return f.errors[field] }

// Validate checks every field and records the errors on the form.
func (f *EmployeeForm) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch {
	case validator.IsEmpty(f.values.EmployeeID):
		errs = append(errs, validator.ValidationError{Field: string(FieldEmployeeID), Message: "Employee ID is required"})
	case !validator.MinLength(f.values.EmployeeID, 3):
		errs = append(errs, validator.ValidationError{Field: string(FieldEmployeeID), Message: "Employee ID must be at least 3 characters"})
	}

	if validator.IsEmpty(f.values.FullName) {
		errs = append(errs, validator.ValidationError{Field: string(FieldFullName), Message: "Full name is required"})
	}

	switch {
	case validator.IsEmpty(f.values.Email):
		errs = append(errs, validator.ValidationError{Field: string(FieldEmail), Message: "Email is required"})
	case !validator.LooksLikeEmail(f.values.Email):
		errs = append(errs, validator.ValidationError{Field: string(FieldEmail), Message: "Enter a valid email address"})
	}

	if validator.IsEmpty(f.values.Department) {
		errs = append(errs, validator.ValidationError{Field: string(FieldDepartment), Message: "Department is required"})
	}

	f.errors = make(map[Field]string, len(errs))
	for _, e := range errs {
		f.errors[Field(e.Field)] = e.Message
	}
	return errs
}

// Submit validates and posts the form. Invalid input never reaches the API.
func (f *EmployeeForm) Submit(ctx context.Context) error {
	if errs := f.Validate(); len(errs) > 0 {
		f.notifier.Notify(notify.Error("Validation error", "Please fix the highlighted fields"))
		return errs
	}

	f.loading = true
	defer func() { f.loading = false }()

	if _, err := f.api.CreateEmployee(ctx, f.values); err != nil {
		f.notifier.Notify(notify.Error("Error", client.DetailOr(err, "Something went wrong")))
		return err
	}

	f.Reset()
	f.notifier.Notify(notify.Info("Success", "Employee added successfully"))
	if f.onSuccess != nil {
		f.onSuccess(ctx)
	}
	return nil
}

func (f *EmployeeForm) Reset() {
	f.values = client.EmployeeInput{}
	f.errors = map[Field]string{}
}
