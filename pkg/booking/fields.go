package booking

// Field names a form input. The string value is the key used in the
// dispatched payload, so it must match the mail template variables verbatim.
type Field string

const (
	FieldFullName         Field = "fullName"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldAlternativePhone Field = "alternativePhone"
	FieldSource           Field = "source"
	FieldDestination      Field = "destination"
	FieldTravelDate       Field = "travelDate"
	FieldDrivingOption    Field = "drivingOption"
)

var fieldOrder = [...]Field{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldAlternativePhone,
	FieldSource,
	FieldDestination,
	FieldTravelDate,
	FieldDrivingOption,
}

// Fields returns every field in display order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder[:])
	return out
}

// ParseField maps a field name to a Field.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !f.Valid() {
		return "", ErrUnknownField
	}
	return f, nil
}

// Valid reports whether f is one of the form's fields.
func (f Field) Valid() bool {
	for _, known := range fieldOrder {
		if f == known {
			return true
		}
	}
	return false
}

func (f Field) String() string { return string(f) }

// Kind is the HTML input type used to render a field.
type Kind string

const (
	KindText   Kind = "text"
	KindEmail  Kind = "email"
	KindTel    Kind = "tel"
	KindDate   Kind = "date"
	KindSelect Kind = "select"
)

// Driving options. The empty value is only the placeholder choice.
const (
	DrivingSelf   = "self"
	DrivingDriver = "driver"
)

// Choice is an option of a select field.
type Choice struct {
	Value string
	Label string
}

// FieldSpec describes how a field is rendered.
type FieldSpec struct {
	Field       Field
	Label       string
	Kind        Kind
	Placeholder string
	Options     []Choice
	Min         string
	Required    bool
}

// Specs returns the specs of every field in display order.
// today is the lower bound for the travel date input.
func Specs(today string) []FieldSpec {
	return []FieldSpec{
		{Field: FieldFullName, Label: "Full Name", Kind: KindText, Placeholder: "Enter your full name", Required: true},
		{Field: FieldEmail, Label: "Email", Kind: KindEmail, Placeholder: "Enter your email", Required: true},
		{Field: FieldPhone, Label: "Phone Number", Kind: KindTel, Placeholder: "Enter your phone number", Required: true},
		{Field: FieldAlternativePhone, Label: "Alternative Number", Kind: KindTel, Placeholder: "Enter your alternative number"},
		{Field: FieldSource, Label: "Source", Kind: KindText, Placeholder: "Starting point", Required: true},
		{Field: FieldDestination, Label: "Destination", Kind: KindText, Placeholder: "Destination point", Required: true},
		{Field: FieldTravelDate, Label: "Travel Date", Kind: KindDate, Placeholder: "Choose a travel date", Min: today, Required: true},
		{
			Field:    FieldDrivingOption,
			Label:    "Driving option",
			Kind:     KindSelect,
			Required: true,
			Options: []Choice{
				{Value: "", Label: "Select an option"},
				{Value: DrivingSelf, Label: "I will drive myself"},
				{Value: DrivingDriver, Label: "I need a driver"},
			},
		},
	}
}
