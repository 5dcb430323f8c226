package onboarding

type Specialty string

const (
	Architect         Specialty = "architect"
	Designer          Specialty = "designer"
	Plumber           Specialty = "plumber"
	Electrician       Specialty = "electrician"
	GeneralContractor Specialty = "general_contractor"
	Landscaper        Specialty = "landscaper"
)

var Specialties = []Specialty{
	Architect,
	Designer,
	Plumber,
	Electrician,
	GeneralContractor,
	Landscaper,
}

func (s Specialty) Valid() bool {
	for _, known := range Specialties {
		if s == known {
			return true
		}
	}
	return false
}
