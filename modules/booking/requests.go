package booking

import core "github.com/dmitrymomot/bookingform/pkg/booking"

// FieldValues are the posted form fields. A nil entry was not posted.
type FieldValues struct {
	FullName         *string `form:"fullName"`
	Email            *string `form:"email"`
	Phone            *string `form:"phone"`
	AlternativePhone *string `form:"alternativePhone"`
	Source           *string `form:"source"`
	Destination      *string `form:"destination"`
	TravelDate       *string `form:"travelDate"`
	DrivingOption    *string `form:"drivingOption"`
}

// Get returns the posted value of f and whether it was posted.
func (v FieldValues) Get(f core.Field) (string, bool) {
	var p *string
	switch f {
	case core.FieldFullName:
		p = v.FullName
	case core.FieldEmail:
		p = v.Email
	case core.FieldPhone:
		p = v.Phone
	case core.FieldAlternativePhone:
		p = v.AlternativePhone
	case core.FieldSource:
		p = v.Source
	case core.FieldDestination:
		p = v.Destination
	case core.FieldTravelDate:
		p = v.TravelDate
	case core.FieldDrivingOption:
		p = v.DrivingOption
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// Posted returns every posted field with its value.
func (v FieldValues) Posted() map[core.Field]string {
	out := make(map[core.Field]string)
	for _, f := range core.Fields() {
		if value, ok := v.Get(f); ok {
			out[f] = value
		}
	}
	return out
}

// FieldRequest is a live edit of the field named in the path. Only that
// field's value is read from the body.
type FieldRequest struct {
	Field string `path:"field"`
	FieldValues
}

type SubmitRequest struct {
	FieldValues
}

type PageRequest struct{}
